package block

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/block/model"
	"innkeep/internal/domains/block/model/dto"
	"innkeep/internal/domains/block/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomBlock
	otel    otel.Otel
}

func New(service service.RoomBlock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blocks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBlock)
		routerGroup.Get("/", handler.GetBlocks)
		routerGroup.Delete("/{id}", handler.DeleteBlock)
	})
}

// CreateBlock closes a room for a date range.
// @Summary Block a room
// @Description Close a room for a date range (renovation, owner use). Rejected when bookings already hold the dates.
// @Tags Block
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomBlockRequest true "Block details"
// @Success 201 {object} response.Data[dto.RoomBlockResponse] "Room blocked successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocks [post]
// @Security BearerAuth
func (handler *Handler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlock")
	defer scope.End()

	var req dto.CreateRoomBlockRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	block, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if !failure.IsConflict(err) {
			log.Error().Err(err).Msg("failed to create room block")
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room blocked successfully")

	response.WithJSON(w, http.StatusCreated, block)
}

// GetBlocks retrieves room blocks.
// @Summary Get room blocks
// @Description Retrieve room blocks with optional filtering and pagination.
// @Tags Block
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetRoomBlocksResponse] "List of blocks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocks [get]
// @Security BearerAuth
func (handler *Handler) GetBlocks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlocks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldRoomID),
				Table:    model.TableName,
			},
		},
	}

	blocks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room blocks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room blocks retrieved successfully")

	response.WithJSON(w, http.StatusOK, blocks)
}

// DeleteBlock lifts a room block.
// @Summary Delete a room block
// @Description Lift a block and release its dates back to inventory.
// @Tags Block
// @Produce json
// @Param id path string true "Block ID"
// @Success 200 {object} response.Message "Room block deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlock")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room block")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room block deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room block deleted successfully")
}
