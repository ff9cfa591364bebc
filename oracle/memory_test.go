// Package oracle
package oracle

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryMembershipHoldings(t *testing.T) {
	ctx := context.Background()
	membership := NewMemoryMembership()
	membership.Grant("0xaa", "1", "2")

	balance, err := membership.BalanceOf(ctx, "0xaa")
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), balance)

	membership.Revoke("0xaa", "1")
	tokens, err := membership.TokensHeldBy(ctx, "0xaa")
	assert.Nil(t, err)
	assert.Equal(t, []string{"2"}, tokens)

	balance, err = membership.BalanceOf(ctx, "0xbb")
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestMemoryMarketplacePurchase(t *testing.T) {
	ctx := context.Background()
	market := NewMemoryMarketplace()
	market.List("7", big.NewInt(100))

	available, err := market.IsAvailable(ctx, "7")
	assert.Nil(t, err)
	assert.True(t, available)

	price, err := market.PriceOf(ctx, "7")
	assert.Nil(t, err)
	assert.Equal(t, int64(100), price.Int64())

	// underpayment leaves the listing unchanged
	assert.Equal(t, ErrPriceBelowAsking, market.Purchase(ctx, "7", big.NewInt(99)))
	available, _ = market.IsAvailable(ctx, "7")
	assert.True(t, available)

	assert.Nil(t, market.Purchase(ctx, "7", big.NewInt(100)))
	available, _ = market.IsAvailable(ctx, "7")
	assert.False(t, available)

	// second purchase of a sold asset fails
	assert.Equal(t, ErrAssetNotListed, market.Purchase(ctx, "7", big.NewInt(100)))
}

func TestMemoryMarketplacePrimedFailure(t *testing.T) {
	ctx := context.Background()
	market := NewMemoryMarketplace()
	market.List("9", big.NewInt(10))
	rejected := errors.New("transfer rejected")
	market.SetPurchaseError(rejected)

	assert.Equal(t, rejected, market.Purchase(ctx, "9", big.NewInt(10)))
	available, _ := market.IsAvailable(ctx, "9")
	assert.True(t, available)
}
