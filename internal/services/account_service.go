package services

import (
	"context"
	"fmt"

	"roam/internal/repositories"
	"roam/pkg/logging"
	"roam/pkg/utils"
)

// QuotaServiceInterface guards the per-user generation allowance.
type QuotaServiceInterface interface {
	// EnsureRemaining fails fast before any upstream work is done.
	EnsureRemaining(ctx context.Context, userID string) (int, error)
	// Debit charges exactly one generation. It is called only after a
	// generation has fully succeeded.
	Debit(ctx context.Context, userID string) (int, error)
}

type QuotaService struct {
	accountRepo repositories.AccountRepository
}

func NewQuotaService(accountRepo repositories.AccountRepository) QuotaServiceInterface {
	return &QuotaService{
		accountRepo: accountRepo,
	}
}

func (q *QuotaService) EnsureRemaining(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, utils.ErrUnauthenticated
	}

	account, err := q.accountRepo.FindById(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return 0, utils.ErrAccountNotFound
	}
	if account.UsageCount <= 0 {
		return 0, utils.ErrQuotaExhausted
	}

	return account.UsageCount, nil
}

func (q *QuotaService) Debit(ctx context.Context, userID string) (int, error) {
	remaining, ok, err := q.accountRepo.ConsumeGeneration(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !ok {
		// Another request spent the last unit between the check and the debit.
		logging.Ctx(ctx).Warn().Str("user_id", userID).Msg("quota debit lost race")
		return 0, utils.ErrQuotaExhausted
	}

	logging.Ctx(ctx).Debug().Str("user_id", userID).Int("remaining", remaining).Msg("quota debited")
	return remaining, nil
}
