package sync

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/sync/service"
	synclogModel "innkeep/internal/domains/synclog/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Sync
	otel    otel.Otel
}

func New(service service.Sync, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router wires the operator surface. RunInventorySync and PushBooking are
// mounted behind the cron token middleware by the router.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Get("/health", handler.GetHealth)
		routerGroup.Get("/logs", handler.GetLogs)
	})
}

func (handler *Handler) CronRouter(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Post("/inventory", handler.RunInventorySync)
		routerGroup.Post("/bookings/{id}/push", handler.PushBooking)
	})
}

// RunInventorySync runs one inbound inventory reconciliation.
// @Summary Run inventory sync
// @Description Pull the PMS inventory snapshot and reconcile local room statuses against it.
// @Tags Sync
// @Produce json
// @Success 200 {object} response.Data[dto.SyncInventoryResponse] "Sync result"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /cron/sync/inventory [post]
// @Security BearerAuth
func (handler *Handler) RunInventorySync(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunInventorySync")
	defer scope.End()

	result, err := handler.service.SyncInventoryFromPMS(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sync inventory")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory sync completed")

	response.WithJSON(w, http.StatusOK, result)
}

// PushBooking retries the outbound push for one booking.
// @Summary Push a booking to the PMS
// @Description Retry the outbound push for a booking that failed its deferred push. A no-op when the booking was already pushed.
// @Tags Sync
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking push completed"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /cron/sync/bookings/{id}/push [post]
// @Security BearerAuth
func (handler *Handler) PushBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PushBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.PushBookingToPMS(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to push booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking push completed")

	response.WithMessage(w, http.StatusOK, "Booking push completed")
}

// GetHealth reports PMS connectivity.
// @Summary Get PMS health
// @Description Report the configured PMS vendor and whether the adapter can reach it.
// @Tags Sync
// @Produce json
// @Success 200 {object} response.Data[dto.HealthResponse] "PMS health"
// @Router /v1/sync/health [get]
func (handler *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHealth")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Health(ctx))
}

// GetLogs retrieves the reconciliation audit trail.
// @Summary Get sync logs
// @Description Retrieve the append-only reconciliation log with optional filtering and pagination.
// @Tags Sync
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param action query string false "Filter by action"
// @Param outcome query string false "Filter by outcome"
// @Success 200 {object} response.Data[dto.GetSyncLogsResponse] "Sync log entries"
// @Failure 500 {object} response.Error
// @Router /v1/sync/logs [get]
// @Security BearerAuth
func (handler *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    synclogModel.FieldAction,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(synclogModel.FieldAction),
				Table:    synclogModel.TableName,
			},
			gDto.Filter{
				Field:    synclogModel.FieldOutcome,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(synclogModel.FieldOutcome),
				Table:    synclogModel.TableName,
			},
		},
	}

	logs, err := handler.service.Logs(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sync logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sync logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}
