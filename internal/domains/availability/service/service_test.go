package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	"innkeep/internal/domains/availability/service"
	blockMocks "innkeep/internal/domains/block/mocks"
	blockModel "innkeep/internal/domains/block/model"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	bookingModel "innkeep/internal/domains/booking/model"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
)

// stay returns a date the given number of days from today, so ranges built
// from it stay in the future whenever the suite runs.
func stay(days int) time.Time {
	now := timezone.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

func stayStr(days int) string {
	return stay(days).Format(constant.StayDateFormat)
}

type availabilityServiceMocks struct {
	roomRepo    *roomMocks.MockRoom
	bookingRepo *bookingMocks.MockBooking
	blockRepo   *blockMocks.MockRoomBlock
	cache       *cacheMocks.MockRedisCache
}

func newAvailabilityService(ctrl *gomock.Controller) (service.Availability, availabilityServiceMocks) {
	m := availabilityServiceMocks{
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		blockRepo:   blockMocks.NewMockRoomBlock(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.roomRepo, m.bookingRepo, m.blockRepo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestAvailabilityService_FindAvailableRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAvailabilityService(ctrl)

	rooms := []roomModel.Room{
		{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusAvailable},
		{ID: "room-2", RoomNumber: "102", Status: constant.RoomStatusMaintenance},
		{ID: "room-3", RoomNumber: "103", Status: constant.RoomStatusAvailable},
		{ID: "room-4", RoomNumber: "104", Status: constant.RoomStatusCleaning},
	}

	m.roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)

	// room-1 is free, room-2 is skipped on status alone, room-3 has a
	// committed overlapping stay, room-4 has an overlapping block.
	m.bookingRepo.EXPECT().CommittedForRoom(gomock.Any(), "room-1").Return(nil, nil)
	m.blockRepo.EXPECT().ForRoom(gomock.Any(), "room-1").Return(nil, nil)

	m.bookingRepo.EXPECT().CommittedForRoom(gomock.Any(), "room-3").Return([]bookingModel.Booking{
		{ID: "booking-1", RoomID: "room-3", CheckIn: stay(11), CheckOut: stay(13), Status: constant.BookingStatusConfirmed},
	}, nil)

	m.bookingRepo.EXPECT().CommittedForRoom(gomock.Any(), "room-4").Return(nil, nil)
	m.blockRepo.EXPECT().ForRoom(gomock.Any(), "room-4").Return([]blockModel.RoomBlock{
		{ID: "block-1", RoomID: "room-4", StartDate: stay(9), EndDate: stay(11), Reason: "painting"},
	}, nil)

	res, err := svc.FindAvailableRooms(context.Background(), stayStr(10), stayStr(12))

	assert.NoError(t, err)
	if assert.Len(t, res.Rooms, 1) {
		assert.Equal(t, "room-1", res.Rooms[0].ID)
	}
}

func TestAvailabilityService_FindAvailableRooms_BadRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAvailabilityService(ctrl)

	_, err := svc.FindAvailableRooms(context.Background(), stayStr(12), stayStr(10))

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestAvailabilityService_FindAvailableRooms_PastCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAvailabilityService(ctrl)

	_, err := svc.FindAvailableRooms(context.Background(), stayStr(-1), stayStr(2))

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestAvailabilityService_IsRoomAvailable(t *testing.T) {
	room := roomModel.Room{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusAvailable}

	tests := []struct {
		name          string
		setupMock     func(m availabilityServiceMocks)
		wantAvailable bool
		wantReason    string
	}{
		{
			name: "free room",
			setupMock: func(m availabilityServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.bookingRepo.EXPECT().CommittedForRoom(gomock.Any(), "room-1").Return(nil, nil)
				m.blockRepo.EXPECT().ForRoom(gomock.Any(), "room-1").Return(nil, nil)
			},
			wantAvailable: true,
		},
		{
			name: "checkout day back to back is free",
			setupMock: func(m availabilityServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.bookingRepo.EXPECT().CommittedForRoom(gomock.Any(), "room-1").Return([]bookingModel.Booking{
					{ID: "booking-1", RoomID: "room-1", CheckIn: stay(8), CheckOut: stay(10), Status: constant.BookingStatusCheckedIn},
				}, nil)
				m.blockRepo.EXPECT().ForRoom(gomock.Any(), "room-1").Return(nil, nil)
			},
			wantAvailable: true,
		},
		{
			name: "committed stay overlaps",
			setupMock: func(m availabilityServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.bookingRepo.EXPECT().CommittedForRoom(gomock.Any(), "room-1").Return([]bookingModel.Booking{
					{ID: "booking-1", RoomID: "room-1", CheckIn: stay(11), CheckOut: stay(13), Status: constant.BookingStatusConfirmed},
				}, nil)
			},
			wantAvailable: false,
			wantReason:    "room is booked for the requested dates",
		},
		{
			name: "room out of order",
			setupMock: func(m availabilityServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusOutOfOrder}, nil)
			},
			wantAvailable: false,
			wantReason:    "room is out_of_order",
		},
		{
			name: "blocked dates",
			setupMock: func(m availabilityServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.bookingRepo.EXPECT().CommittedForRoom(gomock.Any(), "room-1").Return(nil, nil)
				m.blockRepo.EXPECT().ForRoom(gomock.Any(), "room-1").Return([]blockModel.RoomBlock{
					{ID: "block-1", RoomID: "room-1", StartDate: stay(11), EndDate: stay(13), Reason: "deep clean"},
				}, nil)
			},
			wantAvailable: false,
			wantReason:    "room is blocked for the requested dates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAvailabilityService(ctrl)
			tt.setupMock(m)

			res, err := svc.IsRoomAvailable(context.Background(), "room-1", stayStr(10), stayStr(12))

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Equal(t, tt.wantReason, res.Reason)
		})
	}
}

func TestAvailabilityService_IsRoomAvailable_RoomNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAvailabilityService(ctrl)

	m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

	_, err := svc.IsRoomAvailable(context.Background(), "missing", stayStr(10), stayStr(12))

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
