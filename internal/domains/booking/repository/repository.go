package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	gRepo "hotel/shared/repository"
	"time"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ExpirePending(ctx context.Context, before time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ExpirePending cancels room bookings still awaiting payment at the cutoff.
func (r *repositoryImpl) ExpirePending(ctx context.Context, before time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_booking.ExpirePending")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, ArgName: "current_status", Operator: gDto.FilterOperatorEq, Value: constant.StatusPending, Table: model.TableName},
			gDto.Filter{Field: constant.FieldCreatedAt, ArgName: "cutoff", Operator: gDto.FilterOperatorLessEq, Value: before, Table: model.TableName},
		},
	}

	return r.Update(ctx, gModel.Modified(constant.OtelJobScopeName, map[string]any{ //nolint:wrapcheck
		model.FieldStatus:        constant.StatusCancelled,
		model.FieldPaymentStatus: constant.PaymentStatusFailed,
	}), filter)
}
