package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"innkeep/infras/otel"
	bookingRepo "innkeep/internal/domains/booking/repository"
	"innkeep/internal/domains/event/model/dto"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	syncService "innkeep/internal/domains/sync/service"
	synclogModel "innkeep/internal/domains/synclog/model"
	synclogRepo "innkeep/internal/domains/synclog/repository"
	"innkeep/internal/notifier"
	"innkeep/shared"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
	"innkeep/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Event applies inbound PMS webhooks to local state. Every applied event
// leaves a sync log row; unknown events are rejected before touching
// anything.
type Event interface {
	Handle(ctx context.Context, req dto.WebhookRequest) error
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	logRepo     synclogRepo.SyncLog
	sync        syncService.Sync
	notifier    notifier.Notifier
	otel        otel.Otel
}

func New(
	bookingRepo bookingRepo.Booking,
	roomRepo roomRepo.Room,
	logRepo synclogRepo.SyncLog,
	sync syncService.Sync,
	notifier notifier.Notifier,
	otel otel.Otel,
) Event {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logRepo:     logRepo,
		sync:        sync,
		notifier:    notifier,
		otel:        otel,
	}
}

func (s *serviceImpl) Handle(ctx context.Context, req dto.WebhookRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Handle")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch req.Event {
	case constant.WebhookEventBookingCancelled:
		err = s.applyBookingCancelled(ctx, req)
	case constant.WebhookEventRoomStatusChanged:
		err = s.applyRoomStatusChanged(ctx, req)
	case constant.WebhookEventInventoryUpdated:
		// A full snapshot changed upstream; re-run the inbound sync rather
		// than trusting the event payload.
		_, err = s.sync.SyncInventoryFromPMS(ctx)

		return err
	case constant.WebhookEventBookingCreated:
		// PMS-originated bookings are recorded for the audit trail only;
		// importing them is the inventory sync's job.
		s.writeLog(ctx, req, nil, nil)
		log.Info().Str("event", req.Event).Msg("Recorded PMS-originated booking event")

		return nil
	default:
		log.Warn().Str("event", req.Event).Msg("Rejected unknown webhook event")

		return failure.BadRequestFromString(fmt.Sprintf("unknown event %q", req.Event)) // nolint:wrapcheck
	}

	return err
}

// applyBookingCancelled cancels the local booking matching the PMS booking
// id. The cancellation is not echoed back outbound; the PMS already knows.
func (s *serviceImpl) applyBookingCancelled(ctx context.Context, req dto.WebhookRequest) (err error) {
	var data dto.BookingCancelledData
	if err = decode(req.Data, &data); err != nil {
		return err
	}

	booking, err := s.bookingRepo.GetByExternalID(ctx, data.ExternalID)
	if err != nil {
		return fmt.Errorf("failed to look up booking by external id: %w", err)
	}

	if booking.ID == "" {
		log.Warn().Str("externalId", data.ExternalID).Msg("Cancellation received for unknown booking")

		return failure.NotFound("booking") // nolint:wrapcheck
	}

	defer func() {
		s.writeLog(ctx, req, &booking.ID, err)
	}()

	if booking.Status == constant.BookingStatusCancelled {
		log.Info().Str("bookingId", booking.ID).Msg("Booking already cancelled, event is a no-op")

		return nil
	}

	if err = s.bookingRepo.UpdateStatus(ctx, booking.ID, constant.BookingStatusCancelled, constant.SystemActor); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if pubErr := s.notifier.Publish(c, notifier.Event{
			Kind:      notifier.KindBookingCancelled,
			RoomID:    booking.RoomID,
			BookingID: booking.ID,
			Reference: booking.Reference,
			At:        timezone.Now(),
		}); pubErr != nil {
			log.Warn().Err(pubErr).Msg("Failed to publish change event")
		}
	}()

	return nil
}

func (s *serviceImpl) applyRoomStatusChanged(ctx context.Context, req dto.WebhookRequest) (err error) {
	var data dto.RoomStatusChangedData
	if err = decode(req.Data, &data); err != nil {
		return err
	}

	room, err := s.roomRepo.GetByNumber(ctx, data.RoomNumber)
	if err != nil {
		return fmt.Errorf("failed to look up room: %w", err)
	}

	if room.ID == "" {
		log.Warn().Str("roomNumber", data.RoomNumber).Msg("Status change received for unknown room")

		return failure.NotFound("room") // nolint:wrapcheck
	}

	defer func() {
		s.writeLog(ctx, req, nil, err)
	}()

	if room.Status == data.Status {
		return nil
	}

	fields := map[string]any{
		roomModel.FieldStatus:    data.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.SystemActor,
	}
	if err = s.roomRepo.Update(ctx, fields, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if pubErr := s.notifier.Publish(c, notifier.Event{
			Kind:   notifier.KindRoomStatusChanged,
			RoomID: room.ID,
			At:     timezone.Now(),
		}); pubErr != nil {
			log.Warn().Err(pubErr).Msg("Failed to publish change event")
		}
	}()

	return nil
}

func decode[T any](raw json.RawMessage, target *T) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return failure.BadRequestFromString("malformed event payload") // nolint:wrapcheck
	}

	if err := validator.ValidateStruct(target); err != nil {
		return err // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) writeLog(ctx context.Context, req dto.WebhookRequest, bookingID *string, opErr error) {
	entry := synclogModel.SyncLog{
		ID:        uuid.NewString(),
		Action:    constant.SyncActionInboundEvent,
		Direction: constant.SyncDirectionInbound,
		Outcome:   constant.SyncOutcomeSuccess,
		BookingID: bookingID,
		CreatedAt: timezone.Now(),
	}

	if opErr != nil {
		entry.Outcome = constant.SyncOutcomeFailed
		msg := opErr.Error()
		entry.ErrorMessage = &msg
	}

	if raw, err := json.Marshal(req); err == nil {
		entry.Payload = raw
	}

	if err := s.logRepo.Insert(context.WithoutCancel(ctx), entry); err != nil {
		log.Error().Err(err).Str("event", req.Event).Msg("failed to write sync log entry")
	}
}
