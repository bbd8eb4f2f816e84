package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"hotel/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection splits traffic between a read replica and the write primary. Both may
// point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the connection pair.
type Endpoint struct {
	Role     string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
	Timezone string
}

// DSN renders the endpoint as a lib/pq connection URL.
func (e Endpoint) DSN() string {
	query := url.Values{}

	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func New(config *config.Config) *Connection {
	read, write := Endpoints(config)

	return &Connection{
		Read:  mustConnect(read, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: mustConnect(write, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

// Endpoints resolves the read and write endpoints, applying the database name prefix.
func Endpoints(config *config.Config) (read, write Endpoint) {
	pg := config.DB.Postgres

	read = Endpoint{
		Role:     "read",
		Host:     pg.Read.Host,
		Port:     pg.Read.Port,
		Username: pg.Read.Username,
		Password: pg.Read.Password,
		Name:     pg.Prefix + pg.Read.Name,
		SSLMode:  pg.Read.SSLMode,
		Timezone: pg.Read.Timezone,
	}

	write = Endpoint{
		Role:     "write",
		Host:     pg.Write.Host,
		Port:     pg.Write.Port,
		Username: pg.Write.Username,
		Password: pg.Write.Password,
		Name:     pg.Prefix + pg.Write.Name,
		SSLMode:  pg.Write.SSLMode,
		Timezone: pg.Write.Timezone,
	}

	return read, write
}

// Connect dials the endpoint, retrying up to maxRetry times with waitSeconds between attempts.
func Connect(endpoint Endpoint, maxRetry, waitSeconds int) (*sqlx.DB, error) {
	var err error

	for attempt := 1; attempt <= max(maxRetry, 1); attempt++ {
		if attempt > 1 {
			time.Sleep(time.Duration(waitSeconds) * time.Second)
		}

		var db *sqlx.DB

		db, err = sqlx.Connect(driverName, endpoint.DSN())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().
				Str("role", endpoint.Role).
				Str("host", endpoint.Host).
				Str("dbName", endpoint.Name).
				Msg("Connected to database")

			return db, nil
		}

		log.Error().
			Err(err).
			Str("role", endpoint.Role).
			Str("host", endpoint.Host).
			Int("attempt", attempt).
			Msg("Failed connecting to database")
	}

	return nil, fmt.Errorf("connect %s database: %w", endpoint.Role, err)
}

func mustConnect(endpoint Endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	db, err := Connect(endpoint, maxRetry, waitSeconds)
	if err != nil {
		log.Fatal().Err(err).Msg("Database unavailable")
	}

	return db
}

// Close releases both pools. A shared pool is closed once.
func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}
