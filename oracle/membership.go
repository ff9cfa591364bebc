// Package oracle
package oracle

import (
	"context"
	"math/big"
	"strings"

	"github.com/kardiachain/go-kardia/lib/abi"
	"github.com/kardiachain/go-kardia/lib/common"
	"go.uber.org/zap"
)

// membershipABI covers the enumerable NFT surface the eligibility
// checks need.
const membershipABI = `[
	{"inputs":[{"internalType":"address","name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"owner","type":"address"},{"internalType":"uint256","name":"index","type":"uint256"}],"name":"tokenOfOwnerByIndex","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

type chainMembership struct {
	node     *node
	abi      *abi.ABI
	contract common.Address

	lgr *zap.Logger
}

func newChainMembership(n *node, contract string, lgr *zap.Logger) (*chainMembership, error) {
	jsonABI, err := abi.JSON(strings.NewReader(membershipABI))
	if err != nil {
		return nil, err
	}
	return &chainMembership{
		node:     n,
		abi:      &jsonABI,
		contract: common.HexToAddress(contract),
		lgr:      lgr,
	}, nil
}

func (m *chainMembership) BalanceOf(ctx context.Context, identity string) (uint64, error) {
	payload, err := m.abi.Pack("balanceOf", common.HexToAddress(identity))
	if err != nil {
		m.lgr.Error("Error packing balanceOf payload", zap.Error(err))
		return 0, err
	}
	res, err := m.node.contractCall(ctx, m.contract, payload, big.NewInt(0))
	if err != nil {
		m.lgr.Warn("balanceOf call error", zap.Error(err), zap.String("identity", identity))
		return 0, err
	}
	var balance *big.Int
	if err := m.abi.UnpackIntoInterface(&balance, "balanceOf", res); err != nil {
		m.lgr.Error("Error unpacking balanceOf", zap.Error(err))
		return 0, err
	}
	return balance.Uint64(), nil
}

func (m *chainMembership) TokensHeldBy(ctx context.Context, identity string) ([]string, error) {
	balance, err := m.BalanceOf(ctx, identity)
	if err != nil {
		return nil, err
	}
	owner := common.HexToAddress(identity)
	tokens := make([]string, 0, balance)
	for i := uint64(0); i < balance; i++ {
		payload, err := m.abi.Pack("tokenOfOwnerByIndex", owner, new(big.Int).SetUint64(i))
		if err != nil {
			m.lgr.Error("Error packing tokenOfOwnerByIndex payload", zap.Error(err))
			return nil, err
		}
		res, err := m.node.contractCall(ctx, m.contract, payload, big.NewInt(0))
		if err != nil {
			m.lgr.Warn("tokenOfOwnerByIndex call error", zap.Error(err), zap.Uint64("index", i))
			return nil, err
		}
		var tokenID *big.Int
		if err := m.abi.UnpackIntoInterface(&tokenID, "tokenOfOwnerByIndex", res); err != nil {
			m.lgr.Error("Error unpacking tokenOfOwnerByIndex", zap.Error(err))
			return nil, err
		}
		tokens = append(tokens, tokenID.String())
	}
	return tokens, nil
}
