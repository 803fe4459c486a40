package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/availability/model/dto"
	blockRepo "innkeep/internal/domains/block/repository"
	bookingRepo "innkeep/internal/domains/booking/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/interval"

	"github.com/rs/zerolog/log"
)

// Availability answers read-only date range queries against current
// inventory. Results are advisory; only the booking write path decides
// winners under the room lock.
type Availability interface {
	FindAvailableRooms(ctx context.Context, checkIn, checkOut string) (dto.GetAvailableRoomsResponse, error)
	IsRoomAvailable(ctx context.Context, roomID, checkIn, checkOut string) (dto.RoomAvailabilityResponse, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	blockRepo   blockRepo.RoomBlock
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	bookingRepo bookingRepo.Booking,
	blockRepo blockRepo.RoomBlock,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) FindAvailableRooms(ctx context.Context, checkIn, checkOut string) (res dto.GetAvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindAvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := shared.ParseUpcomingStayRange(checkIn, checkOut)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyAvailability, "rooms", checkIn, checkOut)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	available := make([]roomModel.Room, 0, len(rooms))

	for _, room := range rooms {
		free, _, freeErr := s.roomFree(ctx, room, start, end)
		if freeErr != nil {
			return res, freeErr
		}

		if free {
			available = append(available, room)
		}
	}

	res.FromModels(available, checkIn, checkOut)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) IsRoomAvailable(ctx context.Context, roomID, checkIn, checkOut string) (res dto.RoomAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := shared.ParseUpcomingStayRange(checkIn, checkOut)
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound("room") // nolint:wrapcheck
	}

	free, reason, err := s.roomFree(ctx, room, start, end)
	if err != nil {
		return res, err
	}

	return dto.RoomAvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Available: free,
		Reason:    reason,
	}, nil
}

// roomFree applies the three availability gates in order: room status,
// committed bookings, administrative blocks. Every date comparison goes
// through the one shared overlap predicate.
func (s *serviceImpl) roomFree(ctx context.Context, room roomModel.Room, start, end time.Time) (bool, string, error) {
	bookable := false
	for _, status := range constant.RoomBookableStatuses {
		if room.Status == status {
			bookable = true

			break
		}
	}

	if !bookable {
		return false, fmt.Sprintf("room is %s", room.Status), nil
	}

	bookings, err := s.bookingRepo.CommittedForRoom(ctx, room.ID)
	if err != nil {
		return false, "", fmt.Errorf("failed to get bookings for room %s: %w", room.ID, err)
	}

	for _, booking := range bookings {
		if interval.Overlaps(start, end, booking.CheckIn, booking.CheckOut) {
			return false, "room is booked for the requested dates", nil
		}
	}

	blocks, err := s.blockRepo.ForRoom(ctx, room.ID)
	if err != nil {
		return false, "", fmt.Errorf("failed to get blocks for room %s: %w", room.ID, err)
	}

	for _, block := range blocks {
		if interval.Overlaps(start, end, block.StartDate, block.EndDate) {
			return false, "room is blocked for the requested dates", nil
		}
	}

	return true, "", nil
}
