package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	OpID      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 10+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"op_id", event.OpID,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// useCaseSpan times one use case and reports it when finished.
type useCaseSpan struct {
	observer  UseCaseObserver
	name      string
	opID      string
	startedAt time.Time
	fields    map[string]any
}

func startUseCase(observer UseCaseObserver, name string) *useCaseSpan {
	return &useCaseSpan{
		observer:  observer,
		name:      name,
		opID:      uuid.NewString(),
		startedAt: time.Now().UTC(),
		fields:    map[string]any{},
	}
}

func (s *useCaseSpan) set(key string, value any) {
	s.fields[key] = value
}

func (s *useCaseSpan) finish(ctx context.Context, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      s.name,
		OpID:      s.opID,
		StartedAt: s.startedAt,
		Duration:  time.Since(s.startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    s.fields,
	})
}
