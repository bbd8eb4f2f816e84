package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/facilitybooking/model"
	"hotel/internal/domains/facilitybooking/repository"
	"hotel/shared"
	"hotel/shared/constant"
)

func newRepository(t *testing.T) (repository.FacilityBooking, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func booking() model.FacilityBooking {
	return model.FacilityBooking{
		ID:         "fb-1",
		UserID:     "user-1",
		FacilityID: "spa",
		Date:       time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "10:00-11:00",
		TotalPrice: 1500,
		Status:     constant.StatusConfirmed,
	}
}

func TestInsertActive(t *testing.T) {
	tests := []struct {
		name      string
		execErr   error
		wantTaken bool
		wantErr   bool
	}{
		{name: "slot free"},
		{
			name:      "active slot index violation",
			execErr:   &pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: model.ActiveSlotIndex},
			wantTaken: true,
			wantErr:   true,
		},
		{
			name:    "other database error",
			execErr: errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			exec := mock.ExpectExec("INSERT INTO facility_bookings")
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := repo.InsertActive(context.Background(), booking())

			if !tt.wantErr {
				require.NoError(t, err)
				assert.NoError(t, mock.ExpectationsWereMet())

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantTaken, errors.Is(err, repository.ErrSlotTaken))
		})
	}
}

func TestActiveSlots(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare("SELECT facility_bookings.time_slot FROM facility_bookings").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"time_slot"}).AddRow("10:00-11:00").AddRow("14:00-15:00"))

	slots, err := repo.ActiveSlots(context.Background(), "spa", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-11:00", "14:00-15:00"}, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMapsSlotConflict(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("UPDATE facility_bookings SET").
		WillReturnError(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

	err := repo.Update(context.Background(), map[string]any{model.FieldStatus: constant.StatusConfirmed}, shared.FilterByID("fb-2", model.FieldID, model.TableName))
	assert.ErrorIs(t, err, repository.ErrSlotTaken)
}

func TestExpirePending(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("UPDATE facility_bookings SET").WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.ExpirePending(context.Background(), time.Now().Add(-30*time.Minute))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
