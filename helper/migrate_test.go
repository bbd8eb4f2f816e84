package helper

import (
	"hotel/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Username = "hotel"
	cfg.DB.Postgres.Write.Password = "p@ss word"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "bookings"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	t.Run("without prefix or table", func(t *testing.T) {
		assert.Equal(t, "postgres://hotel:p%40ss%20word@db:5432/bookings?sslmode=disable", connectionString(cfg))
	})

	t.Run("with prefix and migration table", func(t *testing.T) {
		withPrefix := *cfg
		withPrefix.DB.Postgres.Prefix = "stg_"
		withPrefix.DB.Postgres.MigrationTable = "schema_migrations"

		assert.Equal(t,
			"postgres://hotel:p%40ss%20word@db:5432/stg_bookings?sslmode=disable&x-migrations-table=schema_migrations",
			connectionString(&withPrefix))
	})
}
