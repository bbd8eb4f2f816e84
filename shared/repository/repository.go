package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

// setArgPrefix keeps SET placeholders apart from the WHERE args of the same column.
const setArgPrefix = "set_"

var (
	errRequiredFilter = errors.New("required filter")
	errEmptyUpdate    = errors.New("nothing to update")
)

type column struct {
	name  string
	table string
	alias string
}

// selectExpr renders the column the way it appears in a SELECT list.
func (c column) selectExpr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

// key is the name the column is addressed by in struct tags and sort params.
func (c column) key() string {
	if c.alias != "" {
		return c.alias
	}

	return c.name
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repository is a generic table gateway over T, whose db/table/column tags describe the row.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	insertQuery   string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          joinQuery(zero),
		insertQuery:   insertQuery(tableName, insertColumns),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+repo.entity+"."+operation)
}

// fail records err on the scope and wraps it with the action that failed.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// get runs a named read query and scans a single row into dest.
func (repo *Repository[T]) get(ctx context.Context, scope otel.Scope, query string, args map[string]any, dest any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer prepare.Close()

	return prepare.GetContext(ctx, dest, args) //nolint:wrapcheck
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, arg any, action string) error {
	ctx, scope := repo.scope(ctx, action)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, repo.insertQuery)

	if _, err := exec.NamedExecContext(ctx, repo.insertQuery, arg); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model, "insert")
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model, "insert")
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.insert(ctx, repo.db.Write, models, "bulk insert")
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.insert(ctx, sqltx, models, "bulk insert")
}

// WithTransaction runs fn inside a write transaction, committing on nil and rolling back otherwise.
func (repo *Repository[T]) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	ctx, scope := repo.scope(ctx, "WithTransaction")
	defer scope.End()

	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return repo.fail(scope, "begin transaction", err)
	}

	if err = fn(sqltx); err != nil {
		if rbErr := sqltx.Rollback(); rbErr != nil {
			logger.ErrorWithStack(rbErr)
		}

		scope.TraceError(err)

		return err
	}

	if err = sqltx.Commit(); err != nil {
		return repo.fail(scope, "commit transaction", err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	exist := false
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)

	if err := repo.get(ctx, scope, query, args, &exist); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the first matching row, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns...), repo.table, repo.join, where)

	err := repo.get(ctx, scope, query, args, &model)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	pagination := paginate(params, args)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.selectList(columns...), repo.table, repo.join, where, repo.orderBy(params), pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []T

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	var count int

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	if err := repo.get(ctx, scope, query, args, &count); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "update")
	defer scope.End()

	if len(mod) == 0 {
		return errEmptyUpdate
	}

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	keys := slices.Sorted(maps.Keys(mod))
	assignments := make([]string, len(keys))

	for i, col := range keys {
		assignments[i] = fmt.Sprintf("%s = :%s%s", col, setArgPrefix, col)
		args[setArgPrefix+col] = mod[col]
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, sqltx, mod, filter)
}

// BuildWhereClause renders filter as a WHERE clause; an empty filter yields an empty clause.
func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func (repo *Repository[T]) selectList(only ...string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.selectExpr())
	}

	return strings.Join(exprs, ", ")
}

// orderBy only accepts sort keys that map to a known column.
func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	if params.SortBy == "" {
		return ""
	}

	idx := slices.IndexFunc(repo.columns, func(c column) bool { return c.key() == params.SortBy })
	if idx < 0 {
		return ""
	}

	dir := dto.SortDirAsc
	if strings.EqualFold(params.SortDir, dto.SortDirDesc) {
		dir = dto.SortDirDesc
	}

	col := repo.columns[idx]
	if col.table == "" {
		return fmt.Sprintf("ORDER BY %s %s", col.name, dir)
	}

	return fmt.Sprintf("ORDER BY %s.%s %s", col.table, col.name, dir)
}

func paginate(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return "LIMIT :limit OFFSET :offset"
}

func insertQuery(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

// joinQuery picks up an optional GetJoinQuery() string method on the model.
func joinQuery(model any) string {
	type joiner interface{ GetJoinQuery() string }

	if j, ok := model.(joiner); ok {
		return j.GetJoinQuery()
	}

	return ""
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		tableField := field.Tag.Get("table")
		if tableField == "" {
			tableField = table
		}

		if tableField == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: tableField, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: tableField})
		}
	}

	return columns, insertColumns
}
