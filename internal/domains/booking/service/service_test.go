package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	blockMocks "innkeep/internal/domains/block/mocks"
	blockModel "innkeep/internal/domains/block/model"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/service"
	guestMocks "innkeep/internal/domains/guest/mocks"
	guestModel "innkeep/internal/domains/guest/model"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	syncMocks "innkeep/internal/domains/sync/mocks"
	notifierMocks "innkeep/internal/notifier/mocks"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
)

func stay(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

type bookingServiceMocks struct {
	repo      *bookingMocks.MockBooking
	roomRepo  *roomMocks.MockRoom
	guestRepo *guestMocks.MockGuest
	blockRepo *blockMocks.MockRoomBlock
	sync      *syncMocks.MockSync
	notifier  *notifierMocks.MockNotifier
	cache     *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingServiceMocks) {
	m := bookingServiceMocks{
		repo:      bookingMocks.NewMockBooking(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		blockRepo: blockMocks.NewMockRoomBlock(ctrl),
		sync:      syncMocks.NewMockSync(ctrl),
		notifier:  notifierMocks.NewMockNotifier(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Writes fan out cache invalidation, change events and the PMS push on
	// detached goroutines; none of them are the behavior under test here.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.sync.EXPECT().PushBookingToPMS(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.sync.EXPECT().CancelBookingInPMS(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.roomRepo, m.guestRepo, m.blockRepo, m.sync, m.notifier, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestBookingService_Create(t *testing.T) {
	availableRoom := roomModel.Room{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusAvailable}
	guest := guestModel.Guest{ID: "guest-1", FullName: "Ada Lovelace", Email: "ada@example.com"}

	req := dto.CreateBookingRequest{
		RoomID:           "room-1",
		GuestName:        "Ada Lovelace",
		GuestEmail:       "ada@example.com",
		CheckIn:          "2026-01-10",
		CheckOut:         "2026-01-12",
		GuestCount:       2,
		TotalAmountCents: 20000,
	}

	tests := []struct {
		name         string
		req          dto.CreateBookingRequest
		setupMock    func(m bookingServiceMocks)
		wantErr      bool
		wantConflict bool
	}{
		{
			name: "overlapping booking rejected",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom, nil)
				m.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
				m.repo.EXPECT().
					InRoomTx(gomock.Any(), "room-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fn func(tx *sqlx.Tx) error) error {
						return fn(nil)
					})
				m.repo.EXPECT().ActiveForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return([]model.Booking{
					{ID: "existing", RoomID: "room-1", CheckIn: stay(11), CheckOut: stay(13), Status: constant.BookingStatusConfirmed},
				}, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "back to back stay allowed",
			req: dto.CreateBookingRequest{
				RoomID:     "room-1",
				GuestName:  "Ada Lovelace",
				GuestEmail: "ada@example.com",
				CheckIn:    "2026-01-12",
				CheckOut:   "2026-01-14",
				GuestCount: 2,
			},
			setupMock: func(m bookingServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom, nil)
				m.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
				m.repo.EXPECT().
					InRoomTx(gomock.Any(), "room-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fn func(tx *sqlx.Tx) error) error {
						return fn(nil)
					})
				m.repo.EXPECT().ActiveForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return([]model.Booking{
					{ID: "existing", RoomID: "room-1", CheckIn: stay(10), CheckOut: stay(12), Status: constant.BookingStatusConfirmed},
				}, nil)
				m.blockRepo.EXPECT().ForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return(nil, nil)
				m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().InsertAddonsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "blocked dates rejected",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom, nil)
				m.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
				m.repo.EXPECT().
					InRoomTx(gomock.Any(), "room-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fn func(tx *sqlx.Tx) error) error {
						return fn(nil)
					})
				m.repo.EXPECT().ActiveForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return(nil, nil)
				m.blockRepo.EXPECT().ForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return([]blockModel.RoomBlock{
					{ID: "block-1", RoomID: "room-1", StartDate: stay(11), EndDate: stay(13), Reason: "deep clean"},
				}, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "room under maintenance rejected",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusMaintenance}, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "room not found",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "check_in after check_out rejected",
			req: dto.CreateBookingRequest{
				RoomID:     "room-1",
				GuestName:  "Ada Lovelace",
				CheckIn:    "2026-01-12",
				CheckOut:   "2026-01-10",
				GuestCount: 1,
			},
			setupMock: func(bookingServiceMocks) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantConflict {
					assert.True(t, failure.IsConflict(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Create_FullyPaidStartsConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	m.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusAvailable}, nil)
	m.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(guestModel.Guest{ID: "guest-1", FullName: "Ada Lovelace", Email: "ada@example.com"}, nil)
	m.repo.EXPECT().
		InRoomTx(gomock.Any(), "room-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
	m.repo.EXPECT().ActiveForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return(nil, nil)
	m.blockRepo.EXPECT().ForRoomTx(gomock.Any(), gomock.Any(), "room-1").Return(nil, nil)

	var inserted model.Booking

	m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
			inserted = booking

			return nil
		})
	m.repo.EXPECT().InsertAddonsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	res, err := svc.Create(ctx, dto.CreateBookingRequest{
		RoomID:           "room-1",
		GuestName:        "Ada Lovelace",
		GuestEmail:       "ada@example.com",
		CheckIn:          "2026-01-10",
		CheckOut:         "2026-01-12",
		GuestCount:       2,
		TotalAmountCents: 20000,
		PaidAmountCents:  20000,
	})

	assert.NoError(t, err)
	assert.Equal(t, constant.BookingStatusConfirmed, inserted.Status)
	assert.Equal(t, int64(20000), inserted.PaidAmountCents)
	assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
}

func TestBookingService_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		call      func(svc service.Booking, ctx context.Context) error
		setupMock func(m bookingServiceMocks)
		wantErr   bool
	}{
		{
			name: "confirm pending booking",
			from: constant.BookingStatusPending,
			call: func(svc service.Booking, ctx context.Context) error { return svc.Confirm(ctx, "booking-1") },
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), "booking-1", constant.BookingStatusConfirmed, gomock.Any()).Return(nil)
			},
		},
		{
			name: "check in marks the room occupied",
			from: constant.BookingStatusConfirmed,
			call: func(svc service.Booking, ctx context.Context) error { return svc.CheckIn(ctx, "booking-1") },
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), "booking-1", constant.BookingStatusCheckedIn, gomock.Any()).Return(nil)
				m.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, constant.RoomStatusOccupied, fields[roomModel.FieldStatus])

						return nil
					})
			},
		},
		{
			name: "check out sends the room to cleaning",
			from: constant.BookingStatusCheckedIn,
			call: func(svc service.Booking, ctx context.Context) error { return svc.CheckOut(ctx, "booking-1") },
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), "booking-1", constant.BookingStatusCheckedOut, gomock.Any()).Return(nil)
				m.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, constant.RoomStatusCleaning, fields[roomModel.FieldStatus])

						return nil
					})
			},
		},
		{
			name: "cancel pending booking",
			from: constant.BookingStatusPending,
			call: func(svc service.Booking, ctx context.Context) error { return svc.Cancel(ctx, "booking-1") },
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), "booking-1", constant.BookingStatusCancelled, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "confirm checked out booking rejected",
			from:      constant.BookingStatusCheckedOut,
			call:      func(svc service.Booking, ctx context.Context) error { return svc.Confirm(ctx, "booking-1") },
			setupMock: func(bookingServiceMocks) {},
			wantErr:   true,
		},
		{
			name:      "check in pending booking rejected",
			from:      constant.BookingStatusPending,
			call:      func(svc service.Booking, ctx context.Context) error { return svc.CheckIn(ctx, "booking-1") },
			setupMock: func(bookingServiceMocks) {},
			wantErr:   true,
		},
		{
			name:      "cancel cancelled booking rejected",
			from:      constant.BookingStatusCancelled,
			call:      func(svc service.Booking, ctx context.Context) error { return svc.Cancel(ctx, "booking-1") },
			setupMock: func(bookingServiceMocks) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)

			m.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(model.Booking{
				ID:        "booking-1",
				Reference: "BK-TEST",
				RoomID:    "room-1",
				Status:    tt.from,
			}, nil)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := tt.call(svc, ctx)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsConflict(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_RecordPayment(t *testing.T) {
	tests := []struct {
		name      string
		booking   model.Booking
		req       dto.RecordPaymentRequest
		setupMock func(m bookingServiceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "partial payment recorded",
			booking: model.Booking{ID: "booking-1", Status: constant.BookingStatusConfirmed, TotalAmountCents: 20000, PaidAmountCents: 5000},
			req:     dto.RecordPaymentRequest{AmountCents: 10000},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, int64(15000), fields["paid_amount_cents"])

						return nil
					})
			},
		},
		{
			name:      "payment on cancelled booking rejected",
			booking:   model.Booking{ID: "booking-1", Status: constant.BookingStatusCancelled, TotalAmountCents: 20000},
			req:       dto.RecordPaymentRequest{AmountCents: 10000},
			setupMock: func(bookingServiceMocks) {},
			wantErr:   true,
			wantCode:  409,
		},
		{
			name:      "overpayment rejected",
			booking:   model.Booking{ID: "booking-1", Status: constant.BookingStatusConfirmed, TotalAmountCents: 20000, PaidAmountCents: 15000},
			req:       dto.RecordPaymentRequest{AmountCents: 10000},
			setupMock: func(bookingServiceMocks) {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)

			m.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(tt.booking, nil)
			tt.setupMock(m)

			err := svc.RecordPayment(context.Background(), "booking-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	t.Run("not found", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("found with addons", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().GetByID(gomock.Any(), "booking-1").Return(model.Booking{
			ID:        "booking-1",
			Reference: "BK-TEST",
			RoomID:    "room-1",
			Status:    constant.BookingStatusConfirmed,
			CheckIn:   stay(10),
			CheckOut:  stay(12),
		}, nil)
		m.repo.EXPECT().AddonsForBooking(gomock.Any(), "booking-1").Return([]model.BookingAddon{
			{ID: "addon-1", BookingID: "booking-1", Name: "breakfast"},
		}, nil)

		res, err := svc.Get(context.Background(), "booking-1")
		assert.NoError(t, err)
		assert.Equal(t, "BK-TEST", res.Reference)
		assert.Len(t, res.Addons, 1)
	})
}

// TestBookingService_ConcurrentCreate drives N concurrent requests for the
// same room and dates through an in-memory serializer and expects exactly
// one winner. The fake repository mirrors the production contract: the
// overlap re-check and the insert run under the same per-room lock.
func TestBookingService_ConcurrentCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newFakeBookingRepo()

	roomRepo := roomMocks.NewMockRoom(ctrl)
	guestRepo := guestMocks.NewMockGuest(ctrl)
	blockRepo := blockMocks.NewMockRoomBlock(ctrl)
	syncSvc := syncMocks.NewMockSync(ctrl)
	notif := notifierMocks.NewMockNotifier(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "room-1", RoomNumber: "101", Status: constant.RoomStatusAvailable}, nil).
		AnyTimes()
	guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(guestModel.Guest{ID: "guest-1", FullName: "Ada Lovelace", Email: "ada@example.com"}, nil).
		AnyTimes()
	blockRepo.EXPECT().ForRoomTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	syncSvc.EXPECT().PushBookingToPMS(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	notif.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, roomRepo, guestRepo, blockRepo, syncSvc, notif, cfg, mockCache, mocks.NewOtel())

	const workers = 16

	req := dto.CreateBookingRequest{
		RoomID:     "room-1",
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		CheckIn:    "2026-01-10",
		CheckOut:   "2026-01-12",
		GuestCount: 2,
	}

	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Create(context.Background(), req)
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var wins, conflicts int

	for err := range results {
		switch {
		case err == nil:
			wins++
		case failure.IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, repo.rows(), 1)
}
