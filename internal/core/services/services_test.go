package services_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/invoicely/internal/adapters/storage/memory"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/core/services"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/SscSPs/invoicely/internal/platform/clock"
	"github.com/SscSPs/invoicely/internal/platform/config"
	"github.com/SscSPs/invoicely/internal/repositories/state"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventTracker ---
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// serviceSuite wires the real repositories over an in-memory store with a pinned clock
// and sequential ids.
type serviceSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memory.Store
	clock     *clock.FixedClock
	ids       *clock.SequenceGenerator
	repos     *portsrepo.RepositoryProvider
	container *portssvc.ServiceContainer
	cfg       *config.Config
}

var suiteStart = time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		DefaultCurrency:         "USD",
		DefaultDueDays:          30,
		StrictStatusTransitions: true,
	}
}

func (s *serviceSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.ctx = middleware.WithLogger(context.Background(), logger)
	s.store = memory.NewStore()
	s.clock = clock.NewFixedClock(suiteStart)
	s.ids = clock.NewSequenceGenerator("id")
	if s.cfg == nil {
		s.cfg = testConfig()
	}
	s.rebuild()
}

// rebuild reloads every collection from the store, like a restart.
func (s *serviceSuite) rebuild(opts ...services.ServiceOption) {
	repos, err := state.NewRepositoryProvider(s.ctx, s.store)
	s.Require().NoError(err)
	s.repos = repos
	base := []services.ServiceOption{
		services.WithClock(s.clock),
		services.WithIDGenerator(s.ids),
	}
	s.container = services.NewServiceContainer(s.cfg, repos, append(base, opts...)...)
}

func (s *serviceSuite) rate(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	s.Require().NoError(err)
	return d
}
