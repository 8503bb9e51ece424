package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/SscSPs/invoicely/internal/platform/clock"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock   clock.Clock
	IDs     clock.IDGenerator
	Tracker portssvc.EventTracker
}

// ServiceOption configures the shared dependencies of a service.
type ServiceOption func(*BaseService)

// WithClock replaces the system clock.
func WithClock(c clock.Clock) ServiceOption {
	return func(s *BaseService) {
		s.Clock = c
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(g clock.IDGenerator) ServiceOption {
	return func(s *BaseService) {
		s.IDs = g
	}
}

// WithEventTracker sends lifecycle events to t.
func WithEventTracker(t portssvc.EventTracker) ServiceOption {
	return func(s *BaseService) {
		s.Tracker = t
	}
}

// NewBaseService resolves opts over the system clock and UUID generator.
func NewBaseService(opts ...ServiceOption) BaseService {
	return newBaseService(opts)
}

func newBaseService(opts []ServiceOption) BaseService {
	base := BaseService{Clock: clock.SystemClock{}, IDs: clock.UUIDGenerator{}}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

func (s *BaseService) now() time.Time {
	return s.Clock.Now()
}

func (s *BaseService) newID() string {
	return s.IDs.NewID()
}

func (s *BaseService) track(distinctID, event string, props map[string]any) {
	if s.Tracker == nil {
		return
	}
	s.Tracker.Enqueue(distinctID, event, props)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
