package otel_test

import (
	"errors"
	"hotel/infras/otel"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestAttribute(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected attribute.KeyValue
	}{
		{name: "string", value: "10:00-11:00", expected: attribute.String("k", "10:00-11:00")},
		{name: "int64 amount", value: int64(150000), expected: attribute.Int64("k", 150000)},
		{name: "bool", value: true, expected: attribute.Bool("k", true)},
		{name: "slice", value: []string{"a", "b"}, expected: attribute.StringSlice("k", []string{"a", "b"})},
		{name: "time", value: time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC), expected: attribute.String("k", "2026-03-03T10:00:00Z")},
		{name: "duration", value: 1500 * time.Millisecond, expected: attribute.Int64("k.ms", 1500)},
		{name: "error", value: errors.New("boom"), expected: attribute.String("k", "boom")},
		{name: "fallback", value: struct{ A int }{A: 1}, expected: attribute.String("k", "{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, otel.Attribute("k", tt.value))
		})
	}
}
