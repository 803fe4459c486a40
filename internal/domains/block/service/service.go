package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/block/model"
	"innkeep/internal/domains/block/model/dto"
	"innkeep/internal/domains/block/repository"
	bookingRepo "innkeep/internal/domains/booking/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/internal/notifier"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/interval"
	"innkeep/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheGetAllBlocks = "block:gets"

type RoomBlock interface {
	Create(ctx context.Context, req dto.CreateRoomBlockRequest) (dto.RoomBlockResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomBlocksResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.RoomBlock
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	notifier    notifier.Notifier
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.RoomBlock,
	bookingRepo bookingRepo.Booking,
	roomRepo roomRepo.Room,
	notifier notifier.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) RoomBlock {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		notifier:    notifier,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create takes inventory the same way a booking does, so it runs under the
// same room lock and re-checks against active bookings before inserting.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomBlockRequest) (res dto.RoomBlockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.SystemActor
	}

	startDate, endDate, err := shared.ParseStayRange(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	exists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to check room: %w", err)
	}

	if !exists {
		return res, failure.NotFound("room") // nolint:wrapcheck
	}

	block := req.ToModel(startDate, endDate, user)

	err = s.bookingRepo.InRoomTx(ctx, block.RoomID, func(tx *sqlx.Tx) error {
		active, txErr := s.bookingRepo.ActiveForRoomTx(ctx, tx, block.RoomID)
		if txErr != nil {
			return fmt.Errorf("failed to get active bookings: %w", txErr)
		}

		for _, booking := range active {
			if interval.Overlaps(block.StartDate, block.EndDate, booking.CheckIn, booking.CheckOut) {
				return failure.Conflict("Room has bookings in the requested dates") // nolint:wrapcheck
			}
		}

		blocks, txErr := s.repo.ForRoomTx(ctx, tx, block.RoomID)
		if txErr != nil {
			return fmt.Errorf("failed to get room blocks: %w", txErr)
		}

		for _, existing := range blocks {
			if interval.Overlaps(block.StartDate, block.EndDate, existing.StartDate, existing.EndDate) {
				return failure.Conflict("Room is already blocked in the requested dates") // nolint:wrapcheck
			}
		}

		return s.repo.InsertTx(ctx, tx, block)
	})
	if err != nil {
		if !failure.IsConflict(err) {
			log.Error().Err(err).Str("roomId", block.RoomID).Msg("failed to create room block")
		}

		return res, err
	}

	s.afterWrite(ctx, notifier.Event{
		Kind:   notifier.KindRoomBlocked,
		RoomID: block.RoomID,
		At:     timezone.Now(),
	})

	res.FromModel(block)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomBlocksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlocks, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count room blocks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get room blocks: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room blocks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	block, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to get room block: %w", err)
	}

	if block.ID == "" {
		return failure.NotFound("room block") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete room block: %w", err)
	}

	s.afterWrite(ctx, notifier.Event{
		Kind:   notifier.KindRoomUnblocked,
		RoomID: block.RoomID,
		At:     timezone.Now(),
	})

	return nil
}

func (s *serviceImpl) afterWrite(ctx context.Context, event notifier.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.Publish(c, event); err != nil {
			log.Warn().Err(err).Str("kind", event.Kind).Msg("Failed to publish change event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlocks)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyAvailability)
	}()
}
