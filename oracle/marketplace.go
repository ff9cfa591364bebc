// Package oracle
package oracle

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/kardiachain/go-kardia/lib/abi"
	"github.com/kardiachain/go-kardia/lib/common"
	"go.uber.org/zap"
)

var ErrInvalidAssetID = errors.New("asset id is not a decimal token id")

// marketplaceABI mirrors the pseudo NFT marketplace contract.
const marketplaceABI = `[
	{"inputs":[{"internalType":"uint256","name":"_tokenId","type":"uint256"}],"name":"available","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getPrice","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_tokenId","type":"uint256"}],"name":"purchase","outputs":[],"stateMutability":"payable","type":"function"}
]`

type chainMarketplace struct {
	node     *node
	abi      *abi.ABI
	contract common.Address

	lgr *zap.Logger
}

func newChainMarketplace(n *node, contract string, lgr *zap.Logger) (*chainMarketplace, error) {
	jsonABI, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		return nil, err
	}
	return &chainMarketplace{
		node:     n,
		abi:      &jsonABI,
		contract: common.HexToAddress(contract),
		lgr:      lgr,
	}, nil
}

func assetTokenID(assetID string) (*big.Int, error) {
	tokenID, ok := new(big.Int).SetString(assetID, 10)
	if !ok {
		return nil, ErrInvalidAssetID
	}
	return tokenID, nil
}

func (m *chainMarketplace) IsAvailable(ctx context.Context, assetID string) (bool, error) {
	tokenID, err := assetTokenID(assetID)
	if err != nil {
		return false, err
	}
	payload, err := m.abi.Pack("available", tokenID)
	if err != nil {
		m.lgr.Error("Error packing available payload", zap.Error(err))
		return false, err
	}
	res, err := m.node.contractCall(ctx, m.contract, payload, big.NewInt(0))
	if err != nil {
		m.lgr.Warn("available call error", zap.Error(err), zap.String("assetId", assetID))
		return false, err
	}
	var available bool
	if err := m.abi.UnpackIntoInterface(&available, "available", res); err != nil {
		m.lgr.Error("Error unpacking available", zap.Error(err))
		return false, err
	}
	return available, nil
}

func (m *chainMarketplace) PriceOf(ctx context.Context, assetID string) (*big.Int, error) {
	if _, err := assetTokenID(assetID); err != nil {
		return nil, err
	}
	payload, err := m.abi.Pack("getPrice")
	if err != nil {
		m.lgr.Error("Error packing getPrice payload", zap.Error(err))
		return nil, err
	}
	res, err := m.node.contractCall(ctx, m.contract, payload, big.NewInt(0))
	if err != nil {
		m.lgr.Warn("getPrice call error", zap.Error(err))
		return nil, err
	}
	var price *big.Int
	if err := m.abi.UnpackIntoInterface(&price, "getPrice", res); err != nil {
		m.lgr.Error("Error unpacking getPrice", zap.Error(err))
		return nil, err
	}
	return price, nil
}

// Purchase submits the all-or-nothing purchase with the payment value
// attached. Settlement ordering is the execution environment's concern;
// a non-nil error means nothing moved.
func (m *chainMarketplace) Purchase(ctx context.Context, assetID string, amount *big.Int) error {
	tokenID, err := assetTokenID(assetID)
	if err != nil {
		return err
	}
	payload, err := m.abi.Pack("purchase", tokenID)
	if err != nil {
		m.lgr.Error("Error packing purchase payload", zap.Error(err))
		return err
	}
	var result common.Bytes
	args := constructCallArgs(m.contract.Hex(), payload, amount)
	if err := m.node.chooseClient().c.CallContext(ctx, &result, "kai_kardiaCall", args, "latest"); err != nil {
		m.lgr.Warn("purchase call error", zap.Error(err), zap.String("assetId", assetID))
		return err
	}
	return nil
}
