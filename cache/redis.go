// Package cache
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

const (
	KeyProposal        = "#proposal#%d"
	KeyProposalCount   = "#proposals#total"
	KeyTreasuryBalance = "#treasury#balance"
	KeyServerStatus    = "#server#status"
)

type Redis struct {
	cfg    Config
	client *redis.Client

	logger *zap.Logger
}

func newRedis(cfg Config) (*Redis, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.URL,
		DB:   cfg.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	if cfg.IsFlush {
		if _, err := redisClient.FlushDB(context.Background()).Result(); err != nil {
			return nil, err
		}
	}
	return &Redis{
		cfg:    cfg,
		client: redisClient,
		logger: cfg.Logger,
	}, nil
}

func (c *Redis) Proposal(ctx context.Context, proposalID uint64) (*types.Proposal, error) {
	result, err := c.client.Get(ctx, fmt.Sprintf(KeyProposal, proposalID)).Result()
	if err != nil {
		return nil, err
	}
	var proposal *types.Proposal
	if err := json.Unmarshal([]byte(result), &proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

func (c *Redis) UpdateProposal(ctx context.Context, proposal *types.Proposal) error {
	data, err := json.Marshal(proposal)
	if err != nil {
		return err
	}
	if _, err := c.client.Set(ctx, fmt.Sprintf(KeyProposal, proposal.ID), string(data), c.cfg.DefaultExpiredTime).Result(); err != nil {
		return err
	}
	return nil
}

func (c *Redis) ProposalCount(ctx context.Context) (uint64, error) {
	result, err := c.client.Get(ctx, KeyProposalCount).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(result, 10, 64)
}

func (c *Redis) UpdateProposalCount(ctx context.Context, count uint64) error {
	if _, err := c.client.Set(ctx, KeyProposalCount, strconv.FormatUint(count, 10), 0).Result(); err != nil {
		return err
	}
	return nil
}

func (c *Redis) TreasuryBalance(ctx context.Context) (string, error) {
	return c.client.Get(ctx, KeyTreasuryBalance).Result()
}

func (c *Redis) UpdateTreasuryBalance(ctx context.Context, balance string) error {
	if _, err := c.client.Set(ctx, KeyTreasuryBalance, balance, 0).Result(); err != nil {
		return err
	}
	return nil
}

func (c *Redis) ServerStatus(ctx context.Context) (*types.ServerStatus, error) {
	result, err := c.client.Get(ctx, KeyServerStatus).Result()
	if err != nil {
		return nil, err
	}
	var status *types.ServerStatus
	if err := json.Unmarshal([]byte(result), &status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Redis) UpdateServerStatus(ctx context.Context, status *types.ServerStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	if _, err := c.client.Set(ctx, KeyServerStatus, string(data), 0).Result(); err != nil {
		return err
	}
	return nil
}
