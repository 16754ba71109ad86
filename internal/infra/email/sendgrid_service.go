// Package email delivers transactional emails through SendGrid.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"booksy/config"
	"booksy/internal/domain/service"
	"booksy/internal/errors"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/fx"
)

const (
	defaultHost     = "https://api.sendgrid.com"
	sendEndpoint    = "/v3/mail/send"
	defaultFromName = "BOOKSY"
)

// message is a rendered email ready to hand to a transport.
type message struct {
	toName  string
	toEmail string
	subject string
	text    string
	html    string
}

type sendgridService struct {
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
}

// Params holds dependencies for the email service, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New returns a SendGrid backed service, or a logging service when no API key is configured.
func New(params Params) service.EmailService {
	cfg := params.Config.Email
	if cfg == nil || cfg.SendgridAPIKey == "" {
		params.Logger.Info("SendGrid not configured, emails will be logged")

		return &logService{logger: params.Logger}
	}

	fromName := cfg.FromName
	if fromName == "" {
		fromName = defaultFromName
	}

	return NewSendgridService(cfg.SendgridAPIKey, defaultHost, fromName, cfg.FromAddress)
}

// NewSendgridService builds a service posting to host.
func NewSendgridService(key, host, fromName, fromAddress string) service.EmailService {
	return &sendgridService{
		key:        key,
		host:       host,
		from:       sgmail.NewEmail(fromName, fromAddress),
		subjPrefix: "[" + fromName + "] ",
	}
}

func (svc *sendgridService) SendWelcome(ctx context.Context, toName, toEmail string) error {
	return svc.send(ctx, welcomeMessage(toName, toEmail))
}

func (svc *sendgridService) SendEnrollmentConfirmation(ctx context.Context, toName, toEmail, courseName string) error {
	return svc.send(ctx, enrollmentMessage(toName, toEmail, courseName))
}

func (svc *sendgridService) prepare(msg message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = svc.subjPrefix + msg.subject
	p.AddTos(sgmail.NewEmail(msg.toName, msg.toEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", msg.text),
		sgmail.NewContent("text/html", msg.html),
	)

	return m
}

func (svc *sendgridService) send(ctx context.Context, msg message) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	req := sendgrid.GetRequest(svc.key, sendEndpoint, svc.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(svc.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		return errors.Wrap(err, "failed to call sendgrid")
	}
	if res.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("sendgrid rejected message: status %d", res.StatusCode)
	}

	return nil
}

// logService writes emails to the log instead of sending them.
type logService struct {
	logger *slog.Logger
}

func (svc *logService) SendWelcome(ctx context.Context, toName, toEmail string) error {
	return svc.send(ctx, welcomeMessage(toName, toEmail))
}

func (svc *logService) SendEnrollmentConfirmation(ctx context.Context, toName, toEmail, courseName string) error {
	return svc.send(ctx, enrollmentMessage(toName, toEmail, courseName))
}

func (svc *logService) send(ctx context.Context, msg message) error {
	svc.logger.InfoContext(ctx, "Email not sent, SendGrid disabled",
		slog.String("to", msg.toEmail),
		slog.String("subject", msg.subject),
	)

	return nil
}

func welcomeMessage(toName, toEmail string) message {
	return message{
		toName:  toName,
		toEmail: toEmail,
		subject: "Welcome to BOOKSY",
		text:    fmt.Sprintf("Hi %s,\n\nYour BOOKSY account is ready. Start browsing courses today.", toName),
		html:    fmt.Sprintf("<p>Hi %s,</p><p>Your BOOKSY account is ready. Start browsing courses today.</p>", toName),
	}
}

func enrollmentMessage(toName, toEmail, courseName string) message {
	return message{
		toName:  toName,
		toEmail: toEmail,
		subject: "You're enrolled in " + courseName,
		text:    fmt.Sprintf("Hi %s,\n\nYou are now enrolled in %s. Happy learning!", toName, courseName),
		html:    fmt.Sprintf("<p>Hi %s,</p><p>You are now enrolled in <strong>%s</strong>. Happy learning!</p>", toName, courseName),
	}
}
