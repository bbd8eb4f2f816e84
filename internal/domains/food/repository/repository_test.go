package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/food/repository"
)

func newRepository(t *testing.T) (repository.Food, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func TestCategories(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT category FROM food_items ORDER BY category")).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("desserts").AddRow("mains"))

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"desserts", "mains"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoriesError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("SELECT DISTINCT").WillReturnError(errors.New("connection reset"))

	_, err := repo.Categories(context.Background())
	assert.ErrorContains(t, err, "connection reset")
}
