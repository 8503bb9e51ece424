package state

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/invoicely/internal/adapters/storage/memory"
	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock StateStore ---
type MockStateStore struct {
	mock.Mock
	saved *memory.Store
}

func newMockStateStore() *MockStateStore {
	return &MockStateStore{saved: memory.NewStore()}
}

func (m *MockStateStore) Load(ctx context.Context, key portsrepo.StateKey, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateStore) Save(ctx context.Context, key portsrepo.StateKey, value any) error {
	args := m.Called(ctx, key, value)
	if err := args.Error(0); err != nil {
		return err
	}
	return m.saved.Save(ctx, key, value)
}

// Update reads what earlier successful Saves stored and writes through Save.
func (m *MockStateStore) Update(ctx context.Context, key portsrepo.StateKey, dest any, fn func(found bool) (any, error)) error {
	found, err := m.saved.Load(ctx, key, dest)
	if err != nil {
		return err
	}
	value, err := fn(found)
	if err != nil {
		return err
	}
	return m.Save(ctx, key, value)
}

func (m *MockStateStore) Delete(ctx context.Context, key portsrepo.StateKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestClientRepository_PersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	repos, err := NewRepositoryProvider(ctx, store)
	require.NoError(t, err)

	require.NoError(t, repos.ClientRepo.SaveClient(ctx, domain.Client{ID: "c-1", Name: "Acme", Currency: "USD"}))
	require.NoError(t, repos.ClientRepo.SaveClient(ctx, domain.Client{ID: "c-2", Name: "Globex", Currency: "EUR"}))
	assert.ErrorIs(t, repos.ClientRepo.SaveClient(ctx, domain.Client{ID: "c-1"}), apperrors.ErrDuplicate)

	updated, err := repos.ClientRepo.UpdateClient(ctx, "c-2", func(c *domain.Client) error {
		c.Name = "Globex Corp"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Globex Corp", updated.Name)

	// a second provider over the same store sees the persisted state
	reloaded, err := NewRepositoryProvider(ctx, store)
	require.NoError(t, err)
	clients, err := reloaded.ClientRepo.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Acme", clients[0].Name)
	assert.Equal(t, "Globex Corp", clients[1].Name)

	removed, err := reloaded.ClientRepo.DeleteClient(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = reloaded.ClientRepo.DeleteClient(ctx, "c-1")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = reloaded.ClientRepo.FindClientByID(ctx, "c-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClientRepository_UpdateUnknownDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	store := newMockStateStore()
	store.On("Load", ctx, portsrepo.ClientsKey, mock.Anything).Return(false, nil).Once()

	repo, err := newClientRepository(ctx, store)
	require.NoError(t, err)

	_, err = repo.UpdateClient(ctx, "missing", func(*domain.Client) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestCollection_SaveFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := newMockStateStore()
	store.On("Load", ctx, portsrepo.InvoicesKey, mock.Anything).Return(false, nil).Once()
	store.On("Save", ctx, portsrepo.InvoicesKey, mock.Anything).Return(nil).Once()
	store.On("Save", ctx, portsrepo.InvoicesKey, mock.Anything).Return(assert.AnError).Once()

	repo, err := newInvoiceRepository(ctx, store)
	require.NoError(t, err)

	first := domain.Invoice{ID: "inv-1", Status: domain.StatusDraft, Items: []domain.LineItem{domain.NewLineItem("a", decimal.NewFromInt(1), decimal.NewFromInt(10))}}
	_, err = repo.SaveInvoice(ctx, first, nil)
	require.NoError(t, err)

	_, err = repo.UpdateInvoice(ctx, "inv-1", func(inv *domain.Invoice) error {
		inv.Status = domain.StatusSent
		inv.Items[0].Description = "changed"
		return nil
	})
	require.ErrorIs(t, err, assert.AnError)

	got, err := repo.FindInvoiceByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, got.Status)
	assert.Equal(t, "a", got.Items[0].Description)
	store.AssertExpectations(t)
}

func TestCollection_LoadFailure(t *testing.T) {
	ctx := context.Background()
	store := newMockStateStore()
	store.On("Load", ctx, portsrepo.ClientsKey, mock.Anything).Return(false, assert.AnError).Once()

	_, err := NewRepositoryProvider(ctx, store)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestInvoiceRepository_ConcurrentNumbering(t *testing.T) {
	ctx := context.Background()
	repo, err := newInvoiceRepository(ctx, memory.NewStore())
	require.NoError(t, err)

	numberer := func(existing []domain.Invoice) string {
		return domain.NextInvoiceNumber(existing, 2024)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.SaveInvoice(ctx, domain.Invoice{ID: fmt.Sprintf("inv-%d", i)}, numberer)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	invoices, err := repo.ListInvoices(ctx)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, inv := range invoices {
		assert.False(t, seen[inv.InvoiceNumber], "duplicate number %s", inv.InvoiceNumber)
		seen[inv.InvoiceNumber] = true
	}
	assert.Len(t, seen, 20)
	assert.True(t, seen["INV-2024-0020"])
}

func TestInvoiceRepository_UpdateWhere(t *testing.T) {
	ctx := context.Background()
	store := newMockStateStore()
	store.On("Load", ctx, portsrepo.InvoicesKey, mock.Anything).Return(false, nil).Once()
	store.On("Save", ctx, portsrepo.InvoicesKey, mock.Anything).Return(nil).Twice()

	repo, err := newInvoiceRepository(ctx, store)
	require.NoError(t, err)
	_, err = repo.SaveInvoice(ctx, domain.Invoice{ID: "a", Status: domain.StatusSent}, nil)
	require.NoError(t, err)

	toOverdue := func(inv *domain.Invoice) (bool, error) {
		if inv.Status != domain.StatusSent {
			return false, nil
		}
		inv.Status = domain.StatusOverdue
		return true, nil
	}

	changed, err := repo.UpdateInvoicesWhere(ctx, toOverdue)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, domain.StatusOverdue, changed[0].Status)

	// nothing left to change, so no further Save
	changed, err = repo.UpdateInvoicesWhere(ctx, toOverdue)
	require.NoError(t, err)
	assert.Empty(t, changed)
	store.AssertExpectations(t)
}

func TestPaymentMethodRepository_Seeding(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	seed := func() []domain.PaymentMethod {
		return domain.SeedPaymentMethods(now, func() string { n++; return fmt.Sprintf("pm-%d", n) })
	}

	repos, err := NewRepositoryProvider(ctx, store, WithPaymentMethodSeed(seed))
	require.NoError(t, err)
	methods, err := repos.PaymentMethodRepo.ListPaymentMethods(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, "Bank Transfer", methods[0].Name)
	assert.True(t, methods[0].IsDefault)

	// an emptied registry stays empty on restart
	require.NoError(t, repos.PaymentMethodRepo.MutatePaymentMethods(ctx, func([]domain.PaymentMethod) ([]domain.PaymentMethod, error) {
		return nil, nil
	}))
	reloaded, err := NewRepositoryProvider(ctx, store, WithPaymentMethodSeed(seed))
	require.NoError(t, err)
	methods, err = reloaded.PaymentMethodRepo.ListPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Empty(t, methods)
	assert.Equal(t, 2, n)
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos, err := NewRepositoryProvider(ctx, store)
	require.NoError(t, err)

	_, err = repos.ProfileRepo.FindProfile(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repos.ProfileRepo.SaveProfile(ctx, domain.UserProfile{ID: "u-1", Name: "Jo", DefaultCurrency: "EUR"}))
	reloaded, err := NewRepositoryProvider(ctx, store)
	require.NoError(t, err)
	p, err := reloaded.ProfileRepo.FindProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", p.DefaultCurrency)

	require.NoError(t, reloaded.ProfileRepo.DeleteProfile(ctx))
	_, err = reloaded.ProfileRepo.FindProfile(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, found := store.Raw(portsrepo.UserKey)
	assert.False(t, found)
}

func TestInvoiceRepository_WritesBuildOnLatestStoredState(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	numberer := func(existing []domain.Invoice) string {
		return domain.NextInvoiceNumber(existing, 2024)
	}

	server, err := newInvoiceRepository(ctx, store)
	require.NoError(t, err)
	_, err = server.SaveInvoice(ctx, domain.Invoice{ID: "inv-1", Status: domain.StatusDraft}, numberer)
	require.NoError(t, err)

	// a second process opened after the first write
	operator, err := newInvoiceRepository(ctx, store)
	require.NoError(t, err)
	_, err = operator.UpdateInvoice(ctx, "inv-1", func(inv *domain.Invoice) error {
		inv.Status = domain.StatusSent
		return nil
	})
	require.NoError(t, err)

	second, err := server.SaveInvoice(ctx, domain.Invoice{ID: "inv-2", Status: domain.StatusDraft}, numberer)
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-0002", second.InvoiceNumber)

	reloaded, err := newInvoiceRepository(ctx, store)
	require.NoError(t, err)
	first, err := reloaded.FindInvoiceByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, first.Status)
	all, err := reloaded.ListInvoices(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// the writer's own view caught up as well
	mine, err := server.FindInvoiceByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSent, mine.Status)
}

func TestInvoiceRepository_UpdateSeesRecordsAddedElsewhere(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	server, err := newInvoiceRepository(ctx, store)
	require.NoError(t, err)
	operator, err := newInvoiceRepository(ctx, store)
	require.NoError(t, err)

	_, err = operator.SaveInvoice(ctx, domain.Invoice{ID: "inv-1", Status: domain.StatusDraft}, nil)
	require.NoError(t, err)

	updated, err := server.UpdateInvoice(ctx, "inv-1", func(inv *domain.Invoice) error {
		inv.Notes = "checked"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "checked", updated.Notes)

	removed, err := operator.DeleteInvoice(ctx, "inv-1")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = server.DeleteInvoice(ctx, "inv-1")
	require.NoError(t, err)
	assert.False(t, removed)
	_, err = server.FindInvoiceByID(ctx, "inv-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProfileRepository_UpdateKeepsConcurrentChanges(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	first, err := newProfileRepository(ctx, store)
	require.NoError(t, err)
	_, err = first.UpdateProfile(ctx, func(*domain.UserProfile) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, first.SaveProfile(ctx, domain.UserProfile{ID: "u-1", Name: "Jo"}))
	second, err := newProfileRepository(ctx, store)
	require.NoError(t, err)

	_, err = first.UpdateProfile(ctx, func(p *domain.UserProfile) error {
		p.Company = "Acme"
		return nil
	})
	require.NoError(t, err)
	updated, err := second.UpdateProfile(ctx, func(p *domain.UserProfile) error {
		p.Phone = "555-0100"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "555-0100", updated.Phone)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := first.UpdateProfile(ctx, func(p *domain.UserProfile) error {
				p.DefaultDueDays++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := first.FindProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, p.DefaultDueDays)
	assert.Equal(t, "555-0100", p.Phone)

	_, err = second.UpdateProfile(ctx, func(*domain.UserProfile) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}
