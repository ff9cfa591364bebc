// Package cfg
package cfg

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	os.Clearenv()
	cfg, err := New()
	assert.Nil(t, err)
	assert.Equal(t, ModeDev, cfg.ServerMode)
	assert.Equal(t, 5*time.Minute, cfg.VotingPeriod)
	assert.Equal(t, "0", cfg.InitialFunding)
	assert.Equal(t, "mgo", cfg.StorageDriver)
	assert.Equal(t, "redis", cfg.CacheEngine)
	assert.Equal(t, "chain", cfg.OracleAdapter)
}

func TestNewFromEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("SERVER_MODE", ModeProduction)
	os.Setenv("VOTING_PERIOD", "60")
	os.Setenv("INITIAL_FUNDING", "500000000000000000")
	os.Setenv("CHAIN_URLS", "https://rpc-a.example,https://rpc-b.example")
	os.Setenv("MEMBERSHIP_CONTRACT", "0x1111111111111111111111111111111111111111")

	cfg, err := New()
	assert.Nil(t, err)
	assert.Equal(t, ModeProduction, cfg.ServerMode)
	assert.Equal(t, time.Minute, cfg.VotingPeriod)
	assert.Equal(t, "500000000000000000", cfg.InitialFunding)
	assert.Equal(t, 2, len(cfg.ChainURLs))
	assert.Equal(t, "0x1111111111111111111111111111111111111111", cfg.MembershipContract)
}
