// Package oracle
package oracle

import (
	"context"
	"errors"
	"math/big"
	"sync"
)

var ErrAssetNotListed = errors.New("asset not listed on marketplace")
var ErrPriceBelowAsking = errors.New("payment below asking price")

// MemoryMembership is the deterministic in-process membership oracle
// used in dev mode and tests. Holdings are mutable between calls, which
// is exactly why eligibility checks must query fresh.
type MemoryMembership struct {
	mu       sync.RWMutex
	holdings map[string][]string
}

func NewMemoryMembership() *MemoryMembership {
	return &MemoryMembership{holdings: make(map[string][]string)}
}

func (m *MemoryMembership) Grant(identity string, tokenIDs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holdings[identity] = append(m.holdings[identity], tokenIDs...)
}

func (m *MemoryMembership) Revoke(identity string, tokenID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	held := m.holdings[identity]
	for i, t := range held {
		if t == tokenID {
			m.holdings[identity] = append(held[:i], held[i+1:]...)
			return
		}
	}
}

func (m *MemoryMembership) BalanceOf(ctx context.Context, identity string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(len(m.holdings[identity])), nil
}

func (m *MemoryMembership) TokensHeldBy(ctx context.Context, identity string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	held := m.holdings[identity]
	tokens := make([]string, len(held))
	copy(tokens, held)
	return tokens, nil
}

// MemoryMarketplace is the deterministic in-process marketplace oracle.
// Purchases are atomic: on any failure the listing is left unchanged.
type MemoryMarketplace struct {
	mu          sync.RWMutex
	listings    map[string]*big.Int
	sold        map[string]bool
	purchaseErr error
}

func NewMemoryMarketplace() *MemoryMarketplace {
	return &MemoryMarketplace{
		listings: make(map[string]*big.Int),
		sold:     make(map[string]bool),
	}
}

func (m *MemoryMarketplace) List(assetID string, price *big.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[assetID] = new(big.Int).Set(price)
	delete(m.sold, assetID)
}

func (m *MemoryMarketplace) Delist(assetID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.listings, assetID)
}

// SetPurchaseError primes the next purchases to fail, simulating a
// rejected transfer.
func (m *MemoryMarketplace) SetPurchaseError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purchaseErr = err
}

func (m *MemoryMarketplace) IsAvailable(ctx context.Context, assetID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, listed := m.listings[assetID]
	return listed && !m.sold[assetID], nil
}

func (m *MemoryMarketplace) PriceOf(ctx context.Context, assetID string) (*big.Int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	price, listed := m.listings[assetID]
	if !listed {
		return nil, ErrAssetNotListed
	}
	return new(big.Int).Set(price), nil
}

func (m *MemoryMarketplace) Purchase(ctx context.Context, assetID string, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.purchaseErr != nil {
		return m.purchaseErr
	}
	price, listed := m.listings[assetID]
	if !listed || m.sold[assetID] {
		return ErrAssetNotListed
	}
	if amount == nil || amount.Cmp(price) < 0 {
		return ErrPriceBelowAsking
	}
	m.sold[assetID] = true
	return nil
}
