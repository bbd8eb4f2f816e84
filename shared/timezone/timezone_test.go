package timezone_test

import (
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "empty falls back to UTC", zone: "", want: "UTC"},
		{name: "unknown falls back to UTC", zone: "Mars/Olympus_Mons", want: "UTC"},
		{name: "iana name", zone: "Asia/Kolkata", want: "Asia/Kolkata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.Load(tt.zone).String())
		})
	}
}

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestDateOf(t *testing.T) {
	kolkata := timezone.Load("Asia/Kolkata")

	// 20:00 UTC is already the next day in Kolkata.
	late := time.Date(2025, 3, 4, 20, 0, 0, 0, time.UTC).In(kolkata)

	got := timezone.DateOf(late)

	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.Wednesday, got.Weekday())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Equal(t, timezone.Now().Day(), today.Day())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2024-01-01", timezone.Format(parsed, time.DateOnly))
}
