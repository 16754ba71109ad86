package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"booksy/internal/domain/constants"
	"booksy/internal/domain/service"

	"github.com/pkg/errors"
)

// LocalSubscription names the simulated push subscription used in development.
const LocalSubscription = "projects/local/subscriptions/enrollment-sub"

// PushMessage represents the structure of a Pub/Sub push message.
// Google Pub/Sub uses this envelope when pushing to HTTP endpoints and the local publisher mimics it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EventAttributes returns the message attributes used for filtering and tracing.
func EventAttributes(event *service.EnrollmentEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": constants.EnrollmentEventType,
		"course_id":  event.CourseID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// DecodeEnrollmentEvent extracts the enrollment event carried by a push message.
func DecodeEnrollmentEvent(msg *PushMessage) (*service.EnrollmentEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.EnrollmentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse enrollment event")
	}

	return &event, nil
}
