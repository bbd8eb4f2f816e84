package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/facilitybooking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	gRepo "hotel/shared/repository"
	"time"

	"github.com/lib/pq"
)

// ErrSlotTaken is returned when an active booking already holds the (facility, date, slot) triple.
var ErrSlotTaken = errors.New("facility slot already held")

type FacilityBooking interface {
	InsertActive(ctx context.Context, model model.FacilityBooking) error
	ActiveSlots(ctx context.Context, facilityID string, date time.Time) ([]string, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.FacilityBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FacilityBooking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ExpirePending(ctx context.Context, before time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.FacilityBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) FacilityBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FacilityBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertActive inserts a pending or confirmed booking. The active-slot unique index
// rejects a second holder atomically, surfacing as ErrSlotTaken.
func (r *repositoryImpl) InsertActive(ctx context.Context, booking model.FacilityBooking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".facility_booking.InsertActive")
	defer scope.End()

	return slotError(r.Insert(ctx, booking))
}

func (r *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".facility_booking.Update")
	defer scope.End()

	return slotError(r.Repository.Update(ctx, req, filter))
}

// ActiveSlots lists the slots held by pending or confirmed bookings of a facility on date.
func (r *repositoryImpl) ActiveSlots(ctx context.Context, facilityID string, date time.Time) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".facility_booking.ActiveSlots")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldFacilityID, Operator: gDto.FilterOperatorEq, Value: facilityID, Table: model.TableName},
			gDto.Filter{Field: model.FieldDate, Operator: gDto.FilterOperatorEq, Value: date.Format(constant.DateOnlyFormat), Table: model.TableName},
			ActiveFilter(),
		},
	}

	bookings, err := r.GetAll(ctx, gDto.QueryParams{}, filter, model.FieldTimeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to get active slots: %w", err)
	}

	slots := make([]string, len(bookings))
	for i, booking := range bookings {
		slots[i] = booking.TimeSlot
	}

	return slots, nil
}

// ExpirePending cancels pending bookings created before the cutoff, releasing their slots.
func (r *repositoryImpl) ExpirePending(ctx context.Context, before time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".facility_booking.ExpirePending")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, ArgName: "current_status", Operator: gDto.FilterOperatorEq, Value: constant.StatusPending, Table: model.TableName},
			gDto.Filter{Field: constant.FieldCreatedAt, ArgName: "cutoff", Operator: gDto.FilterOperatorLessEq, Value: before, Table: model.TableName},
		},
	}

	return r.Repository.Update(ctx, gModel.Modified(constant.OtelJobScopeName, map[string]any{ //nolint:wrapcheck
		model.FieldStatus:        constant.StatusCancelled,
		model.FieldPaymentStatus: constant.PaymentStatusFailed,
	}), filter)
}

// ActiveFilter matches bookings that hold their slot.
func ActiveFilter() gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorIn,
		Value:    []string{constant.StatusPending, constant.StatusConfirmed},
		Table:    model.TableName,
	}
}

func slotError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
		return fmt.Errorf("%w: %s", ErrSlotTaken, pqErr.Constraint)
	}

	return err
}
