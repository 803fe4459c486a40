package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/infras/otel/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	bookingModel "innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/event/model/dto"
	"innkeep/internal/domains/event/service"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	syncMocks "innkeep/internal/domains/sync/mocks"
	syncDto "innkeep/internal/domains/sync/model/dto"
	synclogMocks "innkeep/internal/domains/synclog/mocks"
	synclogModel "innkeep/internal/domains/synclog/model"
	notifierMocks "innkeep/internal/notifier/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
)

type eventServiceMocks struct {
	bookingRepo *bookingMocks.MockBooking
	roomRepo    *roomMocks.MockRoom
	logRepo     *synclogMocks.MockSyncLog
	sync        *syncMocks.MockSync
	notifier    *notifierMocks.MockNotifier
}

func newEventService(ctrl *gomock.Controller) (service.Event, eventServiceMocks) {
	m := eventServiceMocks{
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		logRepo:     synclogMocks.NewMockSyncLog(ctrl),
		sync:        syncMocks.NewMockSync(ctrl),
		notifier:    notifierMocks.NewMockNotifier(ctrl),
	}

	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.bookingRepo, m.roomRepo, m.logRepo, m.sync, m.notifier, mocks.NewOtel())

	return svc, m
}

func payload(t *testing.T, v any) json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(v)
	assert.NoError(t, err)

	return raw
}

func TestEventService_Handle_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newEventService(ctrl)

	err := svc.Handle(context.Background(), dto.WebhookRequest{
		Event: "room.exploded",
		Data:  json.RawMessage(`{}`),
	})

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestEventService_Handle_BookingCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)

	req := dto.WebhookRequest{
		Event: constant.WebhookEventBookingCancelled,
		Data:  payload(t, dto.BookingCancelledData{ExternalID: "PMS-EXT-1", Reason: "guest request"}),
	}

	m.bookingRepo.EXPECT().GetByExternalID(gomock.Any(), "PMS-EXT-1").Return(bookingModel.Booking{
		ID:        "booking-1",
		Reference: "BK-TEST",
		RoomID:    "room-1",
		Status:    constant.BookingStatusConfirmed,
	}, nil)
	m.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), "booking-1", constant.BookingStatusCancelled, constant.SystemActor).Return(nil)

	var logged synclogModel.SyncLog

	m.logRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry synclogModel.SyncLog) error {
			logged = entry

			return nil
		})

	err := svc.Handle(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, constant.SyncActionInboundEvent, logged.Action)
	assert.Equal(t, constant.SyncOutcomeSuccess, logged.Outcome)
	if assert.NotNil(t, logged.BookingID) {
		assert.Equal(t, "booking-1", *logged.BookingID)
	}
}

func TestEventService_Handle_BookingCancelled_AlreadyCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)

	req := dto.WebhookRequest{
		Event: constant.WebhookEventBookingCancelled,
		Data:  payload(t, dto.BookingCancelledData{ExternalID: "PMS-EXT-1"}),
	}

	// Already cancelled: no status write, still audited.
	m.bookingRepo.EXPECT().GetByExternalID(gomock.Any(), "PMS-EXT-1").Return(bookingModel.Booking{
		ID:     "booking-1",
		Status: constant.BookingStatusCancelled,
	}, nil)
	m.logRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Handle(context.Background(), req)

	assert.NoError(t, err)
}

func TestEventService_Handle_BookingCancelled_UnknownBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)

	req := dto.WebhookRequest{
		Event: constant.WebhookEventBookingCancelled,
		Data:  payload(t, dto.BookingCancelledData{ExternalID: "PMS-UNKNOWN"}),
	}

	m.bookingRepo.EXPECT().GetByExternalID(gomock.Any(), "PMS-UNKNOWN").Return(bookingModel.Booking{}, nil)

	err := svc.Handle(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestEventService_Handle_BookingCancelled_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newEventService(ctrl)

	err := svc.Handle(context.Background(), dto.WebhookRequest{
		Event: constant.WebhookEventBookingCancelled,
		Data:  json.RawMessage(`{"external_id":`),
	})

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestEventService_Handle_RoomStatusChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)

	req := dto.WebhookRequest{
		Event: constant.WebhookEventRoomStatusChanged,
		Data:  payload(t, dto.RoomStatusChangedData{RoomNumber: "101", Status: constant.RoomStatusMaintenance}),
	}

	m.roomRepo.EXPECT().GetByNumber(gomock.Any(), "101").Return(roomModel.Room{
		ID:         "room-1",
		RoomNumber: "101",
		Status:     constant.RoomStatusAvailable,
	}, nil)
	m.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, constant.RoomStatusMaintenance, fields[roomModel.FieldStatus])
			assert.Equal(t, constant.SystemActor, fields[constant.FieldModifiedBy])

			return nil
		})
	m.logRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Handle(context.Background(), req)

	assert.NoError(t, err)
}

func TestEventService_Handle_InventoryUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)

	// The payload is not trusted; the inbound sync re-pulls the snapshot.
	m.sync.EXPECT().SyncInventoryFromPMS(gomock.Any()).Return(syncDto.SyncInventoryResponse{RoomsChecked: 4}, nil)

	err := svc.Handle(context.Background(), dto.WebhookRequest{
		Event: constant.WebhookEventInventoryUpdated,
		Data:  json.RawMessage(`{}`),
	})

	assert.NoError(t, err)
}

func TestEventService_Handle_BookingCreated_AuditOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)

	var logged synclogModel.SyncLog

	m.logRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry synclogModel.SyncLog) error {
			logged = entry

			return nil
		})

	err := svc.Handle(context.Background(), dto.WebhookRequest{
		Event: constant.WebhookEventBookingCreated,
		Data:  payload(t, dto.BookingCreatedData{ExternalID: "PMS-EXT-2", RoomNumber: "101"}),
	})

	assert.NoError(t, err)
	assert.Equal(t, constant.SyncOutcomeSuccess, logged.Outcome)
	assert.Nil(t, logged.BookingID)
}
