// Package gov implements the governance state machine: proposal
// registry, voting, execution and the treasury. Callers are assumed
// already authenticated; the engine serializes every state-mutating
// operation so each one is a single atomic unit with no observable
// intermediate state.
package gov

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/db"
	"github.com/maverickdao/governance-backend/oracle"
)

type Config struct {
	Store       db.Client
	Membership  oracle.Membership
	Marketplace oracle.Marketplace
	Treasury    *Treasury

	VotingPeriod time.Duration

	Clock  Clock
	Logger *zap.Logger
}

type Engine struct {
	mu sync.Mutex

	store       db.Client
	membership  oracle.Membership
	marketplace oracle.Marketplace
	treasury    *Treasury

	votingPeriod time.Duration

	clock Clock
	lgr   *zap.Logger
}

func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil || cfg.Membership == nil || cfg.Marketplace == nil || cfg.Treasury == nil {
		return nil, errors.New("missing engine dependency")
	}
	if cfg.VotingPeriod <= 0 {
		return nil, errors.New("voting period must be positive")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	return &Engine{
		store:        cfg.Store,
		membership:   cfg.Membership,
		marketplace:  cfg.Marketplace,
		treasury:     cfg.Treasury,
		votingPeriod: cfg.VotingPeriod,
		clock:        clock,
		lgr:          cfg.Logger,
	}, nil
}

func (e *Engine) Treasury() *Treasury {
	return e.treasury
}
