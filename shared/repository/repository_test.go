package repository

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
	"hotel/shared/constant"
	"hotel/shared/dto"
)

type Audit struct {
	CreatedBy string `db:"created_by"`
}

type room struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Price    int64  `db:"price"`
	TypeName string `db:"type_name" table:"room_types" column:"name"`
	Audit
}

func (room) GetJoinQuery() string {
	return "LEFT JOIN room_types ON room_types.id = rooms.type_id"
}

func newRepo(t *testing.T) (Repository[room], sqlmock.Sqlmock, *mocks.Recorder) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")
	recorder := mocks.NewOtel()

	return NewRepository[room]("room", "rooms", "id", &postgres.Connection{Read: conn, Write: conn}, recorder), mock, recorder
}

func byID(id string) dto.FilterGroup {
	return dto.NewFilterGroup(dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: id, Table: "rooms"})
}

func TestNewRepositoryColumns(t *testing.T) {
	repo, _, _ := newRepo(t)

	assert.Equal(t, "INSERT INTO rooms (id, name, price, created_by) VALUES (:id, :name, :price, :created_by)", repo.insertQuery)
	assert.Equal(t, "rooms.id, rooms.name, rooms.price, room_types.name AS type_name, rooms.created_by", repo.selectList())
	assert.Equal(t, "rooms.price", repo.selectList("price"))
	assert.Contains(t, repo.join, "LEFT JOIN room_types")
}

func TestGetNoRows(t *testing.T) {
	repo, mock, recorder := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT rooms.id, rooms.name")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "type_name", "created_by"}))

	got, err := repo.Get(context.Background(), byID("missing"))
	require.NoError(t, err)
	assert.Equal(t, room{}, got)
	assert.NoError(t, mock.ExpectationsWereMet())

	span, ok := recorder.Find(constant.OtelRepositoryScopeName + ".room.Get")
	require.True(t, ok)
	assert.True(t, span.Ended)
	assert.Contains(t, span.Attributes[constant.OtelQueryAttributeKey], "WHERE")
}

func TestOrderBy(t *testing.T) {
	repo, _, _ := newRepo(t)

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{name: "no sort", params: dto.QueryParams{}, expected: ""},
		{name: "known column", params: dto.QueryParams{SortBy: "price", SortDir: "DESC"}, expected: "ORDER BY rooms.price DESC"},
		{name: "alias resolves to joined column", params: dto.QueryParams{SortBy: "type_name"}, expected: "ORDER BY room_types.name ASC"},
		{name: "unknown column dropped", params: dto.QueryParams{SortBy: "price; DROP TABLE rooms"}, expected: ""},
		{name: "bad direction falls back", params: dto.QueryParams{SortBy: "name", SortDir: "sideways"}, expected: "ORDER BY rooms.name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repo.orderBy(tt.params))
		})
	}
}

func TestPaginate(t *testing.T) {
	args := map[string]any{}
	assert.Equal(t, "", paginate(dto.QueryParams{Page: 2}, args))
	assert.Empty(t, args)

	assert.Equal(t, "LIMIT :limit", paginate(dto.QueryParams{Limit: 5}, args))
	assert.Equal(t, 5, args["limit"])

	assert.Equal(t, "LIMIT :limit OFFSET :offset", paginate(dto.QueryParams{Page: 3, Limit: 10}, args))
	assert.Equal(t, 20, args["offset"])
}

func TestUpdate(t *testing.T) {
	t.Run("set args never collide with filter args", func(t *testing.T) {
		repo, mock, _ := newRepo(t)

		mock.ExpectExec(`UPDATE rooms SET name = \S+, price = \S+\s+WHERE rooms\.id = `).
			WithArgs("Deluxe", int64(9000), "r-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), map[string]any{"price": int64(9000), "name": "Deluxe"}, byID("r-1"))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("requires a filter", func(t *testing.T) {
		repo, _, _ := newRepo(t)

		err := repo.Update(context.Background(), map[string]any{"name": "x"}, dto.FilterGroup{})
		assert.ErrorIs(t, err, errRequiredFilter)
	})

	t.Run("requires columns", func(t *testing.T) {
		repo, _, _ := newRepo(t)

		err := repo.Update(context.Background(), nil, byID("r-1"))
		assert.ErrorIs(t, err, errEmptyUpdate)
	})
}

func TestExistRequiresFilter(t *testing.T) {
	repo, _, _ := newRepo(t)

	_, err := repo.Exist(context.Background(), dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)
}

func TestWithTransaction(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		repo, mock, _ := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO rooms").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
			return repo.InsertTx(context.Background(), tx, room{ID: "r-1"})
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback keeps the callback error", func(t *testing.T) {
		repo, mock, recorder := newRepo(t)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := repo.WithTransaction(context.Background(), func(_ *sqlx.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())

		span, ok := recorder.Find(constant.OtelRepositoryScopeName + ".room.WithTransaction")
		require.True(t, ok)
		assert.Equal(t, []error{boom}, span.Errors)
	})
}

func TestInsertBulkEmpty(t *testing.T) {
	repo, mock, _ := newRepo(t)

	require.NoError(t, repo.InsertBulk(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
