package state

import (
	"context"

	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
)

type paymentMethodRepository struct {
	methods *collection[domain.PaymentMethod]
}

// newPaymentMethodRepository loads the registry. When the blob was never written and
// seed is set, the seeded methods are stored before the repository is returned.
func newPaymentMethodRepository(ctx context.Context, store portsrepo.StateStore, seed func() []domain.PaymentMethod) (portsrepo.PaymentMethodRepositoryFacade, error) {
	c, found, err := loadCollection[domain.PaymentMethod](ctx, store, portsrepo.PaymentMethodsKey, nil)
	if err != nil {
		return nil, err
	}
	if !found && seed != nil {
		if err := c.seed(ctx, seed()); err != nil {
			return nil, err
		}
	}
	return &paymentMethodRepository{methods: c}, nil
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*paymentMethodRepository)(nil)

func (r *paymentMethodRepository) FindPaymentMethodByID(_ context.Context, methodID string) (*domain.PaymentMethod, error) {
	m, ok := r.methods.find(func(m domain.PaymentMethod) bool { return m.ID == methodID })
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (r *paymentMethodRepository) ListPaymentMethods(_ context.Context) ([]domain.PaymentMethod, error) {
	return r.methods.snapshot(), nil
}

func (r *paymentMethodRepository) MutatePaymentMethods(ctx context.Context, fn func([]domain.PaymentMethod) ([]domain.PaymentMethod, error)) error {
	return r.methods.mutate(ctx, fn)
}
