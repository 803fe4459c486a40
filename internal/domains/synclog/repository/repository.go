package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/synclog/model"
	gDto "innkeep/shared/dto"
	gRepo "innkeep/shared/repository"
)

// SyncLog is append-only. No update or delete methods exist on purpose.
type SyncLog interface {
	Insert(ctx context.Context, model model.SyncLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SyncLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.SyncLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) SyncLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SyncLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
