package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	blockMocks "innkeep/internal/domains/block/mocks"
	"innkeep/internal/domains/block/model"
	"innkeep/internal/domains/block/model/dto"
	"innkeep/internal/domains/block/service"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	bookingModel "innkeep/internal/domains/booking/model"
	roomMocks "innkeep/internal/domains/room/mocks"
	notifierMocks "innkeep/internal/notifier/mocks"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
)

func stay(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

type blockServiceMocks struct {
	repo        *blockMocks.MockRoomBlock
	bookingRepo *bookingMocks.MockBooking
	roomRepo    *roomMocks.MockRoom
}

func newBlockService(ctrl *gomock.Controller) (service.RoomBlock, blockServiceMocks) {
	m := blockServiceMocks{
		repo:        blockMocks.NewMockRoomBlock(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
	}

	notif := notifierMocks.NewMockNotifier(ctrl)
	notif.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.bookingRepo, m.roomRepo, notif, cfg, mockCache, mocks.NewOtel())

	return svc, m
}

func TestBlockService_Create(t *testing.T) {
	req := dto.CreateRoomBlockRequest{
		RoomID:    "room-1",
		StartDate: "2026-01-10",
		EndDate:   "2026-01-12",
		Reason:    "deep clean",
	}

	inRoomTx := func(m blockServiceMocks) {
		m.bookingRepo.EXPECT().
			InRoomTx(gomock.Any(), "room-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})
	}

	tests := []struct {
		name         string
		setupMock    func(m blockServiceMocks)
		wantErr      bool
		wantConflict bool
	}{
		{
			name: "block created on a free room",
			setupMock: func(m blockServiceMocks) {
				m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				inRoomTx(m)
				m.bookingRepo.EXPECT().ActiveForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return(nil, nil)
				m.repo.EXPECT().ForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return(nil, nil)
				m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "active booking in range rejected",
			setupMock: func(m blockServiceMocks) {
				m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				inRoomTx(m)
				m.bookingRepo.EXPECT().ActiveForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return([]bookingModel.Booking{
					{ID: "booking-1", RoomID: "room-1", CheckIn: stay(11), CheckOut: stay(13), Status: constant.BookingStatusPending},
				}, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "overlapping block rejected",
			setupMock: func(m blockServiceMocks) {
				m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				inRoomTx(m)
				m.bookingRepo.EXPECT().ActiveForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return(nil, nil)
				m.repo.EXPECT().ForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return([]model.RoomBlock{
					{ID: "block-1", RoomID: "room-1", StartDate: stay(11), EndDate: stay(13)},
				}, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "unknown room rejected",
			setupMock: func(m blockServiceMocks) {
				m.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBlockService(ctrl)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantConflict {
					assert.True(t, failure.IsConflict(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "room-1", res.RoomID)
			}
		})
	}
}

func TestBlockService_Delete(t *testing.T) {
	t.Run("existing block deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBlockService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.RoomBlock{ID: "block-1", RoomID: "room-1"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "block-1"))
	})

	t.Run("missing block not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newBlockService(ctrl)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomBlock{}, nil)

		err := svc.Delete(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
