package service_test

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"

	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/repository"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
)

// fakeBookingRepo is an in-memory stand-in for the Postgres repository that
// keeps the serializer contract intact: InRoomTx holds a per-room mutex for
// the duration of the callback, so the overlap re-check and the insert are
// atomic per room exactly as they are under the advisory lock.
type fakeBookingRepo struct {
	mu       sync.Mutex
	roomLock map[string]*sync.Mutex
	bookings []model.Booking
}

var _ repository.Booking = (*fakeBookingRepo)(nil)

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{roomLock: make(map[string]*sync.Mutex)}
}

func (f *fakeBookingRepo) lockFor(roomID string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.roomLock[roomID]; !ok {
		f.roomLock[roomID] = &sync.Mutex{}
	}

	return f.roomLock[roomID]
}

func (f *fakeBookingRepo) InRoomTx(_ context.Context, roomID string, fn func(tx *sqlx.Tx) error) error {
	lock := f.lockFor(roomID)
	lock.Lock()
	defer lock.Unlock()

	return fn(nil)
}

func (f *fakeBookingRepo) ActiveForRoomTx(_ context.Context, _ *sqlx.Tx, roomID string) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Booking

	for _, b := range f.bookings {
		if b.RoomID != roomID {
			continue
		}

		for _, status := range constant.BookingActiveStatuses {
			if b.Status == status {
				out = append(out, b)

				break
			}
		}
	}

	return out, nil
}

func (f *fakeBookingRepo) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.bookings = append(f.bookings, booking)

	return nil
}

func (f *fakeBookingRepo) InsertAddonsTx(context.Context, *sqlx.Tx, []model.BookingAddon) error {
	return nil
}

func (f *fakeBookingRepo) rows() []model.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]model.Booking, len(f.bookings))
	copy(out, f.bookings)

	return out
}

// The remaining methods are unused by the concurrency path.

func (f *fakeBookingRepo) Insert(_ context.Context, booking model.Booking) error {
	return f.InsertTx(context.Background(), nil, booking)
}

func (f *fakeBookingRepo) Get(context.Context, gDto.FilterGroup, ...string) (model.Booking, error) {
	return model.Booking{}, nil
}

func (f *fakeBookingRepo) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Booking, error) {
	return f.rows(), nil
}

func (f *fakeBookingRepo) Count(context.Context, gDto.FilterGroup) (int, error) {
	return len(f.rows()), nil
}

func (f *fakeBookingRepo) Update(context.Context, map[string]any, gDto.FilterGroup) error {
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (model.Booking, error) {
	for _, b := range f.rows() {
		if b.ID == id {
			return b, nil
		}
	}

	return model.Booking{}, nil
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (model.Booking, error) {
	for _, b := range f.rows() {
		if b.Reference == reference {
			return b, nil
		}
	}

	return model.Booking{}, nil
}

func (f *fakeBookingRepo) GetByExternalID(_ context.Context, externalID string) (model.Booking, error) {
	for _, b := range f.rows() {
		if b.ExternalID != nil && *b.ExternalID == externalID {
			return b, nil
		}
	}

	return model.Booking{}, nil
}

func (f *fakeBookingRepo) ActiveForRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	return f.ActiveForRoomTx(ctx, nil, roomID)
}

func (f *fakeBookingRepo) CommittedForRoom(_ context.Context, roomID string) ([]model.Booking, error) {
	var out []model.Booking

	for _, b := range f.rows() {
		if b.RoomID != roomID {
			continue
		}

		for _, status := range constant.BookingCommittedStatuses {
			if b.Status == status {
				out = append(out, b)

				break
			}
		}
	}

	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID, status, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].Status = status
		}
	}

	return nil
}

func (f *fakeBookingRepo) SetExternalID(_ context.Context, bookingID, externalID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			id := externalID
			f.bookings[i].ExternalID = &id
		}
	}

	return nil
}

func (f *fakeBookingRepo) AddonsForBooking(context.Context, string) ([]model.BookingAddon, error) {
	return nil, nil
}
