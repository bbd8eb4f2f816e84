package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/order/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Order interface {
	Create(ctx context.Context, order model.Order, items []model.Item) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Items(ctx context.Context, orderIDs []string) ([]model.Item, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	items gRepo.Repository[model.Item]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.Item](model.ItemEntityName, model.ItemTableName, model.ItemFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Create writes the order and its items atomically.
func (r *repositoryImpl) Create(ctx context.Context, order model.Order, items []model.Item) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.Create")
	defer scope.End()

	return r.WithTransaction(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if err := r.InsertTx(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		if len(items) == 0 {
			return nil
		}

		if err := r.items.InsertBulkTx(ctx, tx, items); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}

		return nil
	})
}

// Items loads the items of the given orders.
func (r *repositoryImpl) Items(ctx context.Context, orderIDs []string) ([]model.Item, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.Items")
	defer scope.End()

	return r.items.GetAll(ctx, gDto.QueryParams{}, shared.FilterByIDs(orderIDs, model.ItemFieldOrderID, model.ItemTableName)) //nolint:wrapcheck
}
