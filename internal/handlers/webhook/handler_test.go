package webhook_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	eventMocks "innkeep/internal/domains/event/mocks"
	"innkeep/internal/handlers/webhook"
	"innkeep/shared/constant"
)

const webhookSecret = "test-webhook-secret"

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func deliver(handler webhook.Handler, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/pms", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(constant.RequestHeaderWebhookSignature, signature)
	}

	rec := httptest.NewRecorder()
	handler.ReceivePMSEvent(rec, req)

	return rec
}

func TestWebhookHandler_ReceivePMSEvent(t *testing.T) {
	body := []byte(`{"event":"booking.cancelled","data":{"external_id":"PMS-EXT-1"}}`)

	tests := []struct {
		name          string
		signature     string
		allowUnsigned bool
		setupMock     func(m *eventMocks.MockEvent)
		wantStatus    int
	}{
		{
			name:      "valid signature applies the event",
			signature: sign(body),
			setupMock: func(m *eventMocks.MockEvent) {
				m.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "uppercase hex signature accepted",
			signature: strings.ToUpper(sign(body)),
			setupMock: func(m *eventMocks.MockEvent) {
				m.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong signature rejected before the service runs",
			signature:  "deadbeef",
			setupMock:  func(*eventMocks.MockEvent) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non hex signature rejected",
			signature:  "not-a-signature",
			setupMock:  func(*eventMocks.MockEvent) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing signature rejected by default",
			signature:  "",
			setupMock:  func(*eventMocks.MockEvent) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "missing signature accepted when unsigned deliveries are allowed",
			signature:     "",
			allowUnsigned: true,
			setupMock: func(m *eventMocks.MockEvent) {
				m.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "wrong signature rejected even when unsigned deliveries are allowed",
			signature:     "deadbeef",
			allowUnsigned: true,
			setupMock:     func(*eventMocks.MockEvent) {},
			wantStatus:    http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := eventMocks.NewMockEvent(ctrl)
			tt.setupMock(mockService)

			cfg := &config.Config{}
			cfg.Webhook.Secret = webhookSecret
			cfg.Webhook.AllowUnsigned = tt.allowUnsigned

			handler := webhook.New(mockService, cfg, mocks.NewOtel())

			rec := deliver(handler, body, tt.signature)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWebhookHandler_ReceivePMSEvent_InvalidEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Signature is valid but the envelope is missing its event name; the
	// service must never see it.
	mockService := eventMocks.NewMockEvent(ctrl)

	cfg := &config.Config{}
	cfg.Webhook.Secret = webhookSecret

	handler := webhook.New(mockService, cfg, mocks.NewOtel())

	body := []byte(`{"data":{}}`)
	rec := deliver(handler, body, sign(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
