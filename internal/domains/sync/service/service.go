package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/infras/pms"
	bookingRepo "innkeep/internal/domains/booking/repository"
	guestModel "innkeep/internal/domains/guest/model"
	guestRepo "innkeep/internal/domains/guest/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/internal/domains/sync/model/dto"
	synclogModel "innkeep/internal/domains/synclog/model"
	synclogRepo "innkeep/internal/domains/synclog/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Sync reconciles local inventory with the configured PMS in both
// directions. Every run and every push attempt ends with exactly one
// sync log row describing its outcome.
type Sync interface {
	SyncInventoryFromPMS(ctx context.Context) (dto.SyncInventoryResponse, error)
	PushBookingToPMS(ctx context.Context, bookingID string) error
	CancelBookingInPMS(ctx context.Context, bookingID string) error
	Health(ctx context.Context) dto.HealthResponse
	Logs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSyncLogsResponse, error)
}

type serviceImpl struct {
	adapter     pms.Adapter
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	guestRepo   guestRepo.Guest
	logRepo     synclogRepo.SyncLog
	cfg         *config.Config
	otel        otel.Otel
	sleep       func(time.Duration)
}

func New(
	adapter pms.Adapter,
	bookingRepo bookingRepo.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	logRepo synclogRepo.SyncLog,
	cfg *config.Config,
	otel otel.Otel,
) Sync {
	return &serviceImpl{
		adapter:     adapter,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		logRepo:     logRepo,
		cfg:         cfg,
		otel:        otel,
		sleep:       time.Sleep,
	}
}

// SyncInventoryFromPMS pulls the full PMS snapshot and reconciles local room
// statuses against it. Rooms the PMS reports that do not exist locally are
// returned as anomalies and never auto-created. One sync log row is written
// per run, whatever the outcome.
func (s *serviceImpl) SyncInventoryFromPMS(ctx context.Context) (res dto.SyncInventoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncInventoryFromPMS")
	defer scope.End()
	defer scope.TraceIfError(err)

	defer func() {
		s.writeLog(ctx, constant.SyncActionSyncInventory, constant.SyncDirectionInbound, nil, res, err)
	}()

	items, err := s.adapter.SyncInventory(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to pull inventory from PMS")

		return res, fmt.Errorf("failed to pull inventory from PMS: %w", err)
	}

	res.RoomsChecked = len(items)

	for _, item := range items {
		room, roomErr := s.roomRepo.GetByNumber(ctx, item.RoomNumber)
		if roomErr != nil {
			err = fmt.Errorf("failed to look up room %s: %w", item.RoomNumber, roomErr)

			return res, err
		}

		if room.ID == "" {
			res.Anomalies = append(res.Anomalies, dto.InventoryAnomaly{
				RoomNumber: item.RoomNumber,
				PMSStatus:  item.Status,
			})
			log.Warn().Str("roomNumber", item.RoomNumber).Msg("PMS reports a room unknown to local inventory")

			continue
		}

		if item.Status == "" || item.Status == room.Status {
			continue
		}

		fields := map[string]any{
			roomModel.FieldStatus:    item.Status,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: constant.SystemActor,
		}
		if updateErr := s.roomRepo.Update(ctx, fields, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); updateErr != nil {
			err = fmt.Errorf("failed to update room %s status: %w", item.RoomNumber, updateErr)

			return res, err
		}

		res.RoomsUpdated++
	}

	log.Info().
		Int("checked", res.RoomsChecked).
		Int("updated", res.RoomsUpdated).
		Int("anomalies", len(res.Anomalies)).
		Msg("Inventory sync completed")

	return res, nil
}

// PushBookingToPMS pushes one booking outbound. A booking that already has
// an external ID was pushed before and is skipped without touching the
// adapter. Failed attempts retry with doubling backoff; a terminal failure
// leaves the booking valid locally for a later manual or scheduled retry.
func (s *serviceImpl) PushBookingToPMS(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PushBookingToPMS")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return failure.NotFound("booking") // nolint:wrapcheck
	}

	if booking.ExternalID != nil && *booking.ExternalID != "" {
		log.Info().Str("bookingId", bookingID).Str("externalId", *booking.ExternalID).Msg("Booking already pushed, skipping")

		return nil
	}

	defer func() {
		s.writeLog(ctx, constant.SyncActionPushBooking, constant.SyncDirectionOutbound, &booking.ID, nil, err)
	}()

	req, err := s.buildPushRequest(ctx, booking.RoomID, booking.GuestID, booking.Reference, booking.CheckIn, booking.CheckOut, booking.GuestCount)
	if err != nil {
		return err
	}

	result, err := s.pushWithRetry(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("Booking push exhausted retries, booking remains local-only")

		return err
	}

	if err = s.bookingRepo.SetExternalID(ctx, booking.ID, result.ExternalID, constant.SystemActor); err != nil {
		return fmt.Errorf("failed to record external booking id: %w", err)
	}

	log.Info().
		Str("bookingId", bookingID).
		Str("externalId", result.ExternalID).
		Str("confirmation", result.ConfirmationNumber).
		Msg("Booking pushed to PMS")

	return nil
}

// pushWithRetry performs the initial push attempt plus up to MaxRetries
// retries. Business rejections from the PMS are retried the same as
// transport failures; some vendors report transient overbooking protection
// that clears between attempts. The backoff doubles per retry.
func (s *serviceImpl) pushWithRetry(ctx context.Context, req pms.PushRequest) (pms.PushResult, error) {
	var lastErr error

	backoff := time.Duration(s.cfg.PMS.Push.BackoffSeconds) * time.Second

	for attempt := 0; attempt <= s.cfg.PMS.Push.MaxRetries; attempt++ {
		if attempt > 0 {
			s.sleep(backoff)
			backoff *= 2
		}

		if ctx.Err() != nil {
			return pms.PushResult{}, fmt.Errorf("push aborted: %w", ctx.Err())
		}

		result, err := s.adapter.PushBooking(ctx, req)
		if err == nil && result.Success {
			return result, nil
		}

		if err == nil {
			err = fmt.Errorf("PMS rejected booking %s: %v", req.Reference, result.Errors)
		}

		lastErr = err
		log.Warn().Err(err).Str("reference", req.Reference).Int("attempt", attempt+1).Msg("Booking push attempt failed")
	}

	return pms.PushResult{}, fmt.Errorf("failed to push booking after %d attempts: %w", s.cfg.PMS.Push.MaxRetries+1, lastErr)
}

func (s *serviceImpl) buildPushRequest(ctx context.Context, roomID, guestID, reference string, checkIn, checkOut time.Time, guestCount int) (pms.PushRequest, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return pms.PushRequest{}, fmt.Errorf("failed to get room for push: %w", err)
	}

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		return pms.PushRequest{}, fmt.Errorf("failed to get guest for push: %w", err)
	}

	return pms.PushRequest{
		Reference:  reference,
		RoomNumber: room.RoomNumber,
		GuestName:  guest.FullName,
		GuestEmail: guest.Email,
		GuestPhone: guest.Phone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: guestCount,
	}, nil
}

// CancelBookingInPMS propagates a local cancellation upstream. A booking
// that never reached the PMS has nothing to cancel; that case is logged and
// is not an error. Cancellation is never auto-retried.
func (s *serviceImpl) CancelBookingInPMS(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBookingInPMS")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return failure.NotFound("booking") // nolint:wrapcheck
	}

	if booking.ExternalID == nil || *booking.ExternalID == "" {
		log.Warn().Str("bookingId", bookingID).Msg("Booking has no external id, nothing to cancel in PMS")
		s.writeSkipped(ctx, constant.SyncActionCancelBooking, constant.SyncDirectionOutbound, &booking.ID, "booking was never pushed to PMS")

		return nil
	}

	defer func() {
		s.writeLog(ctx, constant.SyncActionCancelBooking, constant.SyncDirectionOutbound, &booking.ID, nil, err)
	}()

	if err = s.adapter.CancelBooking(ctx, *booking.ExternalID); err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Str("externalId", *booking.ExternalID).Msg("Failed to cancel booking in PMS")

		return fmt.Errorf("failed to cancel booking in PMS: %w", err)
	}

	return nil
}

func (s *serviceImpl) Health(ctx context.Context) dto.HealthResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Health")
	defer scope.End()

	return dto.HealthResponse{
		Vendor:    s.adapter.Vendor(),
		Connected: s.adapter.IsConnected(ctx),
	}
}

func (s *serviceImpl) Logs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSyncLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logs")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.logRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count sync logs: %w", err)
	}

	models, err := s.logRepo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get sync logs: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// writeLog appends the audit row for a finished operation. It runs on a
// detached context so a cancelled request still leaves its trail, and a
// failed insert only logs; the audit trail never fails the operation.
func (s *serviceImpl) writeLog(ctx context.Context, action, direction string, bookingID *string, payload any, opErr error) {
	entry := synclogModel.SyncLog{
		ID:        uuid.NewString(),
		Action:    action,
		Direction: direction,
		Outcome:   constant.SyncOutcomeSuccess,
		BookingID: bookingID,
		CreatedAt: timezone.Now(),
	}

	if opErr != nil {
		entry.Outcome = constant.SyncOutcomeFailed
		msg := opErr.Error()
		entry.ErrorMessage = &msg
	}

	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			entry.Payload = raw
		}
	}

	if err := s.logRepo.Insert(context.WithoutCancel(ctx), entry); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to write sync log entry")
	}
}

func (s *serviceImpl) writeSkipped(ctx context.Context, action, direction string, bookingID *string, reason string) {
	entry := synclogModel.SyncLog{
		ID:           uuid.NewString(),
		Action:       action,
		Direction:    direction,
		Outcome:      constant.SyncOutcomeSkipped,
		BookingID:    bookingID,
		ErrorMessage: &reason,
		CreatedAt:    timezone.Now(),
	}

	if err := s.logRepo.Insert(context.WithoutCancel(ctx), entry); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to write sync log entry")
	}
}
