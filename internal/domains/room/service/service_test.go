package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	notifierMocks "innkeep/internal/notifier/mocks"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
)

func newRoomService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	mockRepo := roomMocks.NewMockRoom(ctrl)

	notif := notifierMocks.NewMockNotifier(ctrl)
	notif.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, notif, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "room created with default status",
			req:  dto.CreateRoomRequest{RoomNumber: "101", RoomType: "double"},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().GetByNumber(gomock.Any(), "101").Return(model.Room{}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, constant.RoomStatusAvailable, room.Status)

						return nil
					})
			},
		},
		{
			name: "duplicate room number rejected",
			req:  dto.CreateRoomRequest{RoomNumber: "101", RoomType: "double"},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().GetByNumber(gomock.Any(), "101").
					Return(model.Room{ID: "room-1", RoomNumber: "101"}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.CreateRoomRequest{RoomNumber: "102", RoomType: "single"},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().GetByNumber(gomock.Any(), "102").Return(model.Room{}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, _ := newRoomService(ctrl)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newRoomService(ctrl)

	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusAvailable}, nil)

		res, err := svc.Get(context.Background(), "room-1")

		assert.NoError(t, err)
		assert.Equal(t, "101", res.RoomNumber)
	})

	t.Run("missing room not found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_UpdateStatus(t *testing.T) {
	t.Run("status updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _ := newRoomService(ctrl)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusAvailable}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, constant.RoomStatusMaintenance, fields[model.FieldStatus])

				return nil
			})

		err := svc.UpdateStatus(context.Background(), dto.UpdateRoomStatusRequest{Status: constant.RoomStatusMaintenance}, "room-1")

		assert.NoError(t, err)
	})

	t.Run("missing room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _ := newRoomService(ctrl)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := svc.UpdateStatus(context.Background(), dto.UpdateRoomStatusRequest{Status: constant.RoomStatusMaintenance}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
