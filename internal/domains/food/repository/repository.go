package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/food/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
)

type Food interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Food, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Food, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Categories(ctx context.Context) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Food]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Food {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Food](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Categories lists the distinct menu categories in alphabetical order.
func (r *repositoryImpl) Categories(ctx context.Context) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".food.Categories")
	defer scope.End()

	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s ORDER BY %s", model.FieldCategory, model.TableName, model.FieldCategory)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	categories := []string{}

	if err := r.db.Read.SelectContext(ctx, &categories, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get categories (%s): %w", model.EntityName, err)
	}

	return categories, nil
}
