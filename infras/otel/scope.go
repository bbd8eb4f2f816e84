package otel

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope is a single traced unit of work. Callers must End it.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{span: span}
}

func (s *scopeImpl) End() {
	s.span.End()
}

func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.span.SetAttributes(Attribute(key, value))
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for key, value := range attributes {
		kvs = append(kvs, Attribute(key, value))
	}

	s.span.SetAttributes(kvs...)
}

// Attribute converts a Go value into a span attribute. Money amounts and counters stay
// numeric; anything unrecognised is rendered with %v.
func Attribute(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case bool:
		return attribute.Bool(key, val)
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case []int64:
		return attribute.Int64Slice(key, val)
	case time.Time:
		return attribute.String(key, val.UTC().Format(time.RFC3339))
	case time.Duration:
		return attribute.Int64(key+".ms", val.Milliseconds())
	case error:
		return attribute.String(key, val.Error())
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}
