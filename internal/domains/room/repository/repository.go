package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
