package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/event/model/dto"
	"innkeep/internal/domains/event/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Event, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/webhooks", func(routerGroup chi.Router) {
		routerGroup.Post("/pms", handler.ReceivePMSEvent)
	})
}

// ReceivePMSEvent accepts one PMS webhook delivery.
// @Summary Receive a PMS webhook
// @Description Verify the HMAC-SHA256 signature over the raw body and apply the event. Invalid signatures are rejected before any state changes.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string true "Hex HMAC-SHA256 of the request body"
// @Param request body dto.WebhookRequest true "Event envelope"
// @Success 200 {object} response.Message "Event applied"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /webhooks/pms [post]
func (handler *Handler) ReceivePMSEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReceivePMSEvent")
	defer scope.End()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook body")

		response.WithError(w, failure.BadRequestFromString("unreadable request body"))

		return
	}

	if err := handler.verifySignature(body, r.Header.Get(constant.RequestHeaderWebhookSignature)); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("Rejected webhook delivery")

		response.WithError(w, err)

		return
	}

	var req dto.WebhookRequest
	if err := validator.Validate(bytes.NewReader(body), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate webhook payload")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Handle(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", req.Event).Msg("failed to apply webhook event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Webhook event applied")

	response.WithMessage(w, http.StatusOK, "Event applied")
}

// verifySignature checks the hex HMAC-SHA256 of the raw body against the
// signature header. A missing header passes only when unsigned deliveries
// are explicitly allowed; a present but wrong signature never does.
func (handler *Handler) verifySignature(body []byte, signature string) error {
	if signature == "" {
		if handler.cfg.Webhook.AllowUnsigned {
			log.Warn().Msg("Accepted unsigned webhook delivery, allowed by configuration")

			return nil
		}

		return failure.Unauthorized("missing webhook signature") // nolint:wrapcheck
	}

	// Senders are not consistent about hex casing, so compare decoded bytes.
	sent, err := hex.DecodeString(signature)
	if err != nil {
		return failure.Unauthorized("invalid webhook signature") // nolint:wrapcheck
	}

	mac := hmac.New(sha256.New, []byte(handler.cfg.Webhook.Secret))
	mac.Write(body)

	if !hmac.Equal(mac.Sum(nil), sent) {
		return failure.Unauthorized("invalid webhook signature") // nolint:wrapcheck
	}

	return nil
}
