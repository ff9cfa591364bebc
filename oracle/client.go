// Package oracle
package oracle

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"

	"github.com/kardiachain/go-kardia/lib/common"
	"github.com/kardiachain/go-kardia/rpc"
	"go.uber.org/zap"
)

var ErrEmptyResponse = errors.New("empty response from node")

type rpcClient struct {
	c *rpc.Client
}

// node fans contract calls out over a pool of RPC endpoints.
type node struct {
	clients []*rpcClient
	next    uint64

	lgr *zap.Logger
}

func newNode(urls []string, lgr *zap.Logger) (*node, error) {
	if len(urls) == 0 {
		return nil, errors.New("missing chain RPC URLs in config")
	}
	n := &node{lgr: lgr}
	for _, url := range urls {
		lgr.Info("Setup node", zap.String("url", url))
		c, err := rpc.Dial(url)
		if err != nil {
			return nil, err
		}
		n.clients = append(n.clients, &rpcClient{c: c})
	}
	return n, nil
}

func (n *node) chooseClient() *rpcClient {
	i := atomic.AddUint64(&n.next, 1)
	return n.clients[i%uint64(len(n.clients))]
}

type smcCallArgs struct {
	From     string   `json:"from"`
	To       *string  `json:"to"`
	Gas      uint64   `json:"gas"`
	GasPrice *big.Int `json:"gasPrice"`
	Value    *big.Int `json:"value"`
	Data     string   `json:"data"`
}

func constructCallArgs(address string, payload []byte, value *big.Int) smcCallArgs {
	return smcCallArgs{
		From:     address,
		To:       &address,
		Gas:      100000000,
		GasPrice: big.NewInt(0),
		Value:    value,
		Data:     common.Bytes(payload).String(),
	}
}

func (n *node) contractCall(ctx context.Context, contract common.Address, payload []byte, value *big.Int) (common.Bytes, error) {
	var result common.Bytes
	args := constructCallArgs(contract.Hex(), payload, value)
	if err := n.chooseClient().c.CallContext(ctx, &result, "kai_kardiaCall", args, "latest"); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrEmptyResponse
	}
	return result, nil
}
