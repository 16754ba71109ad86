package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"booksy/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_CourseURL(t *testing.T) {
	service := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://booksy.example/"}})
	courseID := uuid.New()

	assert.Equal(t, "https://booksy.example/courses/"+courseID.String(), service.CourseURL(courseID))
}

func TestQRCodeService_GenerateCourseQR(t *testing.T) {
	service := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})

	qrBytes, err := service.GenerateCourseQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_Defaults(t *testing.T) {
	service := NewQRCodeService(nil).(*qrcodeService)

	assert.Equal(t, defaultSize, service.size)
	assert.Equal(t, qrcode.Medium, service.errorCorrectionLevel)
	assert.Equal(t, defaultBaseURL, service.baseURL)
}
