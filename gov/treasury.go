// Package gov
package gov

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/db"
	"github.com/maverickdao/governance-backend/types"
	"github.com/maverickdao/governance-backend/utils"
)

var ErrNegativeAmount = errors.New("amount must be non-negative")

// Treasury is the single pool funding approved purchases. All mutations
// go through Credit and Debit, each a single atomic step; the balance
// is never read-then-written across two steps by callers.
type Treasury struct {
	mu      sync.Mutex
	balance *big.Int

	store db.Client
	clock Clock
	lgr   *zap.Logger
}

// NewTreasury loads the persisted balance, seeding the initial funding
// exactly once when the store has no treasury record yet.
func NewTreasury(ctx context.Context, store db.Client, initialFunding *big.Int, clock Clock, lgr *zap.Logger) (*Treasury, error) {
	t := &Treasury{
		store: store,
		clock: clock,
		lgr:   lgr,
	}
	balance, err := store.TreasuryBalance(ctx)
	switch err {
	case nil:
		t.balance = balance
	case types.ErrRecordNotFound:
		t.balance = big.NewInt(0)
		if initialFunding != nil && initialFunding.Sign() > 0 {
			if err := t.Credit(ctx, initialFunding, "bootstrap"); err != nil {
				return nil, err
			}
			lgr.Info("Treasury seeded", zap.String("balance", initialFunding.String()))
		} else if err := store.UpdateTreasuryBalance(ctx, t.balance); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return t, nil
}

// Balance returns a snapshot copy.
func (t *Treasury) Balance() *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return new(big.Int).Set(t.balance)
}

// Ledger returns treasury entries newest first together with the total
// number of entries.
func (t *Treasury) Ledger(ctx context.Context, pagination *types.Pagination) ([]*types.TreasuryEntry, uint64, error) {
	return t.store.TreasuryEntries(ctx, pagination)
}

func (t *Treasury) Credit(ctx context.Context, amount *big.Int, from string) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	balance := new(big.Int).Add(t.balance, amount)
	if err := t.store.UpdateTreasuryBalance(ctx, balance); err != nil {
		return err
	}
	t.balance = balance
	t.appendEntry(ctx, &types.TreasuryEntry{
		Kind:   types.TreasuryCredit,
		Amount: utils.FormatAmount(amount),
		From:   from,
		Time:   t.clock.Now().Unix(),
	})
	return nil
}

func (t *Treasury) Debit(ctx context.Context, amount *big.Int, proposalID uint64) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if amount.Cmp(t.balance) > 0 {
		return types.ErrInsufficientFunds
	}
	balance := new(big.Int).Sub(t.balance, amount)
	if err := t.store.UpdateTreasuryBalance(ctx, balance); err != nil {
		return err
	}
	t.balance = balance
	t.appendEntry(ctx, &types.TreasuryEntry{
		Kind:       types.TreasuryDebit,
		Amount:     utils.FormatAmount(amount),
		ProposalID: proposalID,
		Time:       t.clock.Now().Unix(),
	})
	return nil
}

// ledger writes are best effort, the balance document stays
// authoritative
func (t *Treasury) appendEntry(ctx context.Context, entry *types.TreasuryEntry) {
	if err := t.store.InsertTreasuryEntry(ctx, entry); err != nil {
		t.lgr.Warn("cannot append treasury ledger entry", zap.Error(err))
	}
}
