package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/facility/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Facility interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Facility, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Facility, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Facility]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Facility {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Facility](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
