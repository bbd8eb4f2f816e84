// Package mocks provides an in-memory otel.Otel for tests. Every scope it opens is
// kept so tests can assert on recorded errors and attributes.
package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Span is what a scope recorded.
type Span struct {
	Scope      string
	Name       string
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool
}

type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func NewOtel() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, &scope{recorder: r, span: span}
}

// Spans returns a snapshot of the spans opened so far.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Span, len(r.spans))
	for i, span := range r.spans {
		out[i] = *span
	}

	return out
}

// Find returns the first span with the given name.
func (r *Recorder) Find(name string) (Span, bool) {
	for _, span := range r.Spans() {
		if span.Name == name {
			return span, true
		}
	}

	return Span{}, false
}

type scope struct {
	recorder *Recorder
	span     *Span
}

func (s *scope) End() {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Ended = true
}

func (s *scope) TraceError(err error) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Errors = append(s.span.Errors, err)
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(name string) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Events = append(s.span.Events, name)
}

func (s *scope) SetAttribute(key string, value any) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.span.Attributes[key] = value
}

func (s *scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
