package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/block/model"
	gDto "innkeep/shared/dto"
	gRepo "innkeep/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomBlock interface {
	Insert(ctx context.Context, model model.RoomBlock) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.RoomBlock) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomBlock, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomBlock, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ForRoom(ctx context.Context, roomID string) ([]model.RoomBlock, error)
	ForRoomTx(ctx context.Context, tx *sqlx.Tx, roomID string) ([]model.RoomBlock, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomBlock]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomBlock {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomBlock](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func byRoom(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (repo *repositoryImpl) ForRoom(ctx context.Context, roomID string) ([]model.RoomBlock, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, byRoom(roomID))
}

// ForRoomTx reads blocks through the caller's transaction so the overlap
// re-check inside the booking lock sees rows committed by earlier holders.
func (repo *repositoryImpl) ForRoomTx(ctx context.Context, tx *sqlx.Tx, roomID string) ([]model.RoomBlock, error) {
	return repo.GetAllTx(ctx, tx, gDto.QueryParams{}, byRoom(roomID))
}
