package timezone

import (
	"hotel/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	loadOnce    sync.Once
)

func location() *time.Location {
	loadOnce.Do(func() {
		appLocation = Load(config.Get().App.Timezone)
	})

	return appLocation
}

// Load resolves an IANA zone name, falling back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the hotel's timezone.
func Now() time.Time {
	return time.Now().In(location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func GetLocation() *time.Location {
	return location()
}

// Today is the hotel's current calendar date, as midnight UTC like every stored DATE.
func Today() time.Time {
	return DateOf(Now())
}

// DateOf drops the clock part of t, keeping its calendar date in t's own location.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, location()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
