package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	blockRepo "innkeep/internal/domains/block/repository"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/repository"
	guestModel "innkeep/internal/domains/guest/model"
	guestRepo "innkeep/internal/domains/guest/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	syncService "innkeep/internal/domains/sync/service"
	"innkeep/internal/notifier"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/interval"
	gModel "innkeep/shared/model"
	"innkeep/shared/reference"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

// validTransitions maps each booking status to the statuses it may move to.
var validTransitions = map[string][]string{
	constant.BookingStatusPending:   {constant.BookingStatusConfirmed, constant.BookingStatusCancelled},
	constant.BookingStatusConfirmed: {constant.BookingStatusCheckedIn, constant.BookingStatusCancelled},
	constant.BookingStatusCheckedIn: {constant.BookingStatusCheckedOut, constant.BookingStatusCancelled},
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Confirm(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	RecordPayment(ctx context.Context, id string, req dto.RecordPaymentRequest) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	blockRepo blockRepo.RoomBlock
	sync      syncService.Sync
	notifier  notifier.Notifier
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	blockRepo blockRepo.RoomBlock,
	sync syncService.Sync,
	notifier notifier.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		blockRepo: blockRepo,
		sync:      sync,
		notifier:  notifier,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create is the single entry point for taking new inventory. The overlap
// check and the insert both happen inside the room's advisory lock, so two
// concurrent requests for the same room serialize and the loser sees the
// winner's row when it re-checks.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.SystemActor
	}

	checkIn, checkOut, err := shared.ParseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound("room") // nolint:wrapcheck
	}

	bookable := false
	for _, status := range constant.RoomBookableStatuses {
		if room.Status == status {
			bookable = true

			break
		}
	}

	if !bookable {
		return res, failure.Conflict(fmt.Sprintf("Room %s is %s and cannot be booked", room.RoomNumber, room.Status)) // nolint:wrapcheck
	}

	guestID, err := s.resolveGuest(ctx, req, user)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(guestID, reference.New(reference.BookingPrefix), checkIn, checkOut, user)
	addons := req.ToAddonModels(booking.ID, user)

	err = s.repo.InRoomTx(ctx, booking.RoomID, func(tx *sqlx.Tx) error {
		active, txErr := s.repo.ActiveForRoomTx(ctx, tx, booking.RoomID)
		if txErr != nil {
			return fmt.Errorf("failed to get active bookings: %w", txErr)
		}

		for _, existing := range active {
			if interval.Overlaps(booking.CheckIn, booking.CheckOut, existing.CheckIn, existing.CheckOut) {
				return failure.Conflict("Room is unavailable for the requested dates") // nolint:wrapcheck
			}
		}

		blocks, txErr := s.blockRepo.ForRoomTx(ctx, tx, booking.RoomID)
		if txErr != nil {
			return fmt.Errorf("failed to get room blocks: %w", txErr)
		}

		for _, block := range blocks {
			if interval.Overlaps(booking.CheckIn, booking.CheckOut, block.StartDate, block.EndDate) {
				return failure.Conflict("Room is blocked for the requested dates") // nolint:wrapcheck
			}
		}

		if txErr = s.repo.InsertTx(ctx, tx, booking); txErr != nil {
			return fmt.Errorf("failed to insert booking: %w", txErr)
		}

		return s.repo.InsertAddonsTx(ctx, tx, addons)
	})
	if err != nil {
		if failure.IsConflict(err) {
			log.Info().Str("roomId", booking.RoomID).Str("reference", booking.Reference).Msg("Booking rejected, dates conflict")
		} else {
			log.Error().Err(err).Str("roomId", booking.RoomID).Msg("failed to create booking")
		}

		return res, err
	}

	s.afterWrite(ctx, notifier.Event{
		Kind:      notifier.KindBookingCreated,
		RoomID:    booking.RoomID,
		BookingID: booking.ID,
		Reference: booking.Reference,
		At:        timezone.Now(),
	})

	// Push outbound off the request path. A failed push never unwinds the
	// local booking; the reconciliation log records it for retry.
	go func(bookingID string) {
		c := context.WithoutCancel(ctx)

		if pushErr := s.sync.PushBookingToPMS(c, bookingID); pushErr != nil {
			log.Warn().Err(pushErr).Str("bookingId", bookingID).Msg("Deferred PMS push failed")
		}
	}(booking.ID)

	res.FromModel(booking)
	res.WithAddons(addons)

	return res, nil
}

// resolveGuest reuses an existing guest when the request carries an email we
// already know, otherwise records a new one.
func (s *serviceImpl) resolveGuest(ctx context.Context, req dto.CreateBookingRequest, user string) (string, error) {
	if req.GuestEmail != "" {
		existing, err := s.guestRepo.Get(ctx, shared.FilterByID(req.GuestEmail, guestModel.FieldEmail, guestModel.TableName))
		if err != nil {
			return "", fmt.Errorf("failed to look up guest: %w", err)
		}

		if existing.ID != "" {
			return existing.ID, nil
		}
	}

	guest := guestModel.Guest{
		ID:       uuid.NewString(),
		FullName: req.GuestName,
		Email:    req.GuestEmail,
		Phone:    req.GuestPhone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.guestRepo.Insert(ctx, guest); err != nil {
		return "", fmt.Errorf("failed to create guest: %w", err)
	}

	return guest.ID, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking") // nolint:wrapcheck
	}

	addons, err := s.repo.AddonsForBooking(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get booking addons: %w", err)
	}

	res.FromModel(booking)
	res.WithAddons(addons)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) error {
	return s.transition(ctx, id, constant.BookingStatusConfirmed, "")
}

// CheckIn moves the booking to checked_in and marks the room occupied.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) error {
	return s.transition(ctx, id, constant.BookingStatusCheckedIn, constant.RoomStatusOccupied)
}

// CheckOut releases the stay and sends the room to cleaning.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) error {
	return s.transition(ctx, id, constant.BookingStatusCheckedOut, constant.RoomStatusCleaning)
}

// Cancel frees the booking's dates and propagates the cancellation to the
// PMS off the request path. Cancelling only releases inventory, so it does
// not need the room lock.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.SystemActor
	}

	booking, err := s.loadForTransition(ctx, id, constant.BookingStatusCancelled)
	if err != nil {
		return err
	}

	if err = s.repo.UpdateStatus(ctx, id, constant.BookingStatusCancelled, user); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.afterWrite(ctx, notifier.Event{
		Kind:      notifier.KindBookingCancelled,
		RoomID:    booking.RoomID,
		BookingID: booking.ID,
		Reference: booking.Reference,
		At:        timezone.Now(),
	})

	go func(bookingID string) {
		c := context.WithoutCancel(ctx)

		if cancelErr := s.sync.CancelBookingInPMS(c, bookingID); cancelErr != nil {
			log.Warn().Err(cancelErr).Str("bookingId", bookingID).Msg("Deferred PMS cancellation failed")
		}
	}(booking.ID)

	return nil
}

func (s *serviceImpl) RecordPayment(ctx context.Context, id string, req dto.RecordPaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.SystemActor
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return failure.NotFound("booking") // nolint:wrapcheck
	}

	if booking.Status == constant.BookingStatusCancelled {
		return failure.Conflict("Cannot record payment on a cancelled booking") // nolint:wrapcheck
	}

	paid := booking.PaidAmountCents + req.AmountCents
	if paid > booking.TotalAmountCents {
		return failure.BadRequestFromString("Payment exceeds outstanding balance") // nolint:wrapcheck
	}

	fields := map[string]any{
		"paid_amount_cents":      paid,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// transition applies one lifecycle step and, when roomStatus is non-empty,
// moves the room with it.
func (s *serviceImpl) transition(ctx context.Context, id, target, roomStatus string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == "" {
		user = constant.SystemActor
	}

	booking, err := s.loadForTransition(ctx, id, target)
	if err != nil {
		return err
	}

	if err = s.repo.UpdateStatus(ctx, id, target, user); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if roomStatus != "" {
		fields := map[string]any{
			roomModel.FieldStatus:    roomStatus,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}
		if err = s.roomRepo.Update(ctx, fields, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		s.afterWrite(ctx, notifier.Event{
			Kind:   notifier.KindRoomStatusChanged,
			RoomID: booking.RoomID,
			At:     timezone.Now(),
		})

		return nil
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) loadForTransition(ctx context.Context, id, target string) (model.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking") // nolint:wrapcheck
	}

	for _, allowed := range validTransitions[booking.Status] {
		if allowed == target {
			return booking, nil
		}
	}

	return booking, failure.Conflict(fmt.Sprintf("Cannot move booking from %s to %s", booking.Status, target)) // nolint:wrapcheck
}

// afterWrite publishes the change event and drops caches made stale by a
// successful write. Both are best effort.
func (s *serviceImpl) afterWrite(ctx context.Context, event notifier.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notifier.Publish(c, event); err != nil {
			log.Warn().Err(err).Str("kind", event.Kind).Msg("Failed to publish change event")
		}
	}()

	s.invalidate(ctx)
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyAvailability)
	}()
}
