package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gRepo "innkeep/shared/repository"
	"innkeep/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetByID(ctx context.Context, id string) (model.Booking, error)
	GetByReference(ctx context.Context, reference string) (model.Booking, error)
	GetByExternalID(ctx context.Context, externalID string) (model.Booking, error)
	ActiveForRoom(ctx context.Context, roomID string) ([]model.Booking, error)
	CommittedForRoom(ctx context.Context, roomID string) ([]model.Booking, error)
	ActiveForRoomTx(ctx context.Context, tx *sqlx.Tx, roomID string) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status, actor string) error
	SetExternalID(ctx context.Context, bookingID, externalID, actor string) error
	InsertAddonsTx(ctx context.Context, tx *sqlx.Tx, addons []model.BookingAddon) error
	AddonsForBooking(ctx context.Context, bookingID string) ([]model.BookingAddon, error)
	InRoomTx(ctx context.Context, roomID string, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	addons gRepo.Repository[model.BookingAddon]
	db     *postgres.Connection
	otel   otel.Otel
	cfg    *config.Config
}

func New(db *postgres.Connection, otel otel.Otel, cfg *config.Config) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		addons:     gRepo.NewRepository[model.BookingAddon](model.AddonEntityName, model.AddonTableName, model.AddonFieldID, db, otel),
		db:         db,
		otel:       otel,
		cfg:        cfg,
	}
}

// InRoomTx runs fn inside a write transaction that holds the advisory lock
// for roomID. Every writer that changes a room's commitments goes through
// here, so at most one of them is inside fn per room at a time. The lock is
// transaction-scoped and releases on commit or rollback.
func (repo *repositoryImpl) InRoomTx(ctx context.Context, roomID string, fn func(tx *sqlx.Tx) error) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InRoomTx")
	defer scope.End()

	return repo.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.lockRoom(ctx, tx, roomID); err != nil {
			return err
		}

		return fn(tx)
	})
}

// lockRoom takes pg_advisory_xact_lock keyed on hashtext(roomID). A bounded
// lock_timeout keeps a stuck holder from queueing writers indefinitely; the
// 55P03 timeout surfaces as a transient failure the client can retry.
func (repo *repositoryImpl) lockRoom(ctx context.Context, tx *sqlx.Tx, roomID string) error {
	timeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", repo.cfg.DB.Postgres.LockTimeoutMS)
	if _, err := tx.ExecContext(ctx, timeout); err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}

	_, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", roomID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeLockNotAvailable {
			log.Warn().Str("roomId", roomID).Msg("Timed out waiting for room lock")
			return failure.Transient("Room is busy, please retry")
		}

		return fmt.Errorf("failed to acquire room lock: %w", err)
	}

	return nil
}

func activeForRoomFilter(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.BookingActiveStatuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) GetByReference(ctx context.Context, reference string) (model.Booking, error) {
	return repo.Get(ctx, shared.FilterByID(reference, model.FieldReference, model.TableName))
}

func (repo *repositoryImpl) GetByExternalID(ctx context.Context, externalID string) (model.Booking, error) {
	return repo.Get(ctx, shared.FilterByID(externalID, model.FieldExternalID, model.TableName))
}

// ActiveForRoom fetches by room and status only. Date overlap is decided by
// the callers against the one shared predicate, never in SQL.
func (repo *repositoryImpl) ActiveForRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, activeForRoomFilter(roomID))
}

func (repo *repositoryImpl) ActiveForRoomTx(ctx context.Context, tx *sqlx.Tx, roomID string) ([]model.Booking, error) {
	return repo.GetAllTx(ctx, tx, gDto.QueryParams{}, activeForRoomFilter(roomID))
}

// CommittedForRoom narrows to confirmed and in-house stays. The read-path
// availability query uses this; the write-path re-check uses the wider
// active set because a pending booking already holds its dates.
func (repo *repositoryImpl) CommittedForRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.BookingCommittedStatuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter)
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, bookingID, status, actor string) error {
	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	return repo.Update(ctx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) SetExternalID(ctx context.Context, bookingID, externalID, actor string) error {
	fields := map[string]any{
		model.FieldExternalID:    externalID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	return repo.Update(ctx, fields, shared.FilterByID(bookingID, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) InsertAddonsTx(ctx context.Context, tx *sqlx.Tx, addons []model.BookingAddon) error {
	if len(addons) == 0 {
		return nil
	}

	return repo.addons.InsertBulkTx(ctx, tx, addons)
}

func (repo *repositoryImpl) AddonsForBooking(ctx context.Context, bookingID string) ([]model.BookingAddon, error) {
	return repo.addons.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(bookingID, model.AddonFieldBookingID, model.AddonTableName))
}
