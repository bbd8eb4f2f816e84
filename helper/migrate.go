package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

// connectionString builds the migrate DSN for the write database.
func connectionString(config *config.Config) string {
	_, write := postgres.Endpoints(config)

	dsn, err := url.Parse(write.DSN())
	if err != nil {
		return write.DSN()
	}

	if config.DB.Postgres.MigrationTable != "" {
		query := dsn.Query()
		query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
		dsn.RawQuery = query.Encode()
	}

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		version, dirty, verr := mig.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", verr)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}
