// Package cfg
package cfg

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ModeDev        = "dev"
	ModeProduction = "prod"

	ServerVersion = "1.0.0"
)

type Config struct {
	ServerMode        string
	Port              string
	HttpRequestSecret string

	LogLevel  string
	SentryDSN string

	StorageDriver  string
	StorageURI     string
	StorageDB      string
	StorageMinConn int
	StorageMaxConn int
	StorageIsFlush bool

	CacheEngine      string
	CacheURL         string
	CacheDB          int
	CacheIsFlush     bool
	CacheExpiredTime time.Duration

	OracleAdapter       string
	ChainURLs           []string
	MembershipContract  string
	MarketplaceContract string

	VotingPeriod   time.Duration
	InitialFunding string
}

func New() (Config, error) {
	storageMinConn, err := strconv.Atoi(os.Getenv("STORAGE_MIN_CONN"))
	if err != nil {
		storageMinConn = 1
	}
	storageMaxConn, err := strconv.Atoi(os.Getenv("STORAGE_MAX_CONN"))
	if err != nil {
		storageMaxConn = 4
	}
	storageIsFlush, err := strconv.ParseBool(os.Getenv("STORAGE_IS_FLUSH"))
	if err != nil {
		storageIsFlush = false
	}

	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		cacheDB = 0
	}
	cacheIsFlush, err := strconv.ParseBool(os.Getenv("CACHE_IS_FLUSH"))
	if err != nil {
		cacheIsFlush = false
	}
	cacheExpiredTime, err := strconv.Atoi(os.Getenv("CACHE_EXPIRED_TIME"))
	if err != nil {
		cacheExpiredTime = 12
	}

	votingPeriod, err := strconv.Atoi(os.Getenv("VOTING_PERIOD"))
	if err != nil {
		votingPeriod = 300
	}

	initialFunding := os.Getenv("INITIAL_FUNDING")
	if initialFunding == "" {
		initialFunding = "0"
	}

	var chainURLs []string
	if chainURLsStr := os.Getenv("CHAIN_URLS"); chainURLsStr != "" {
		chainURLs = strings.Split(chainURLsStr, ",")
	}

	cfg := Config{
		ServerMode:        defaultStr(os.Getenv("SERVER_MODE"), ModeDev),
		Port:              defaultStr(os.Getenv("PORT"), ":3000"),
		HttpRequestSecret: os.Getenv("HTTP_REQUEST_SECRET"),

		LogLevel:  defaultStr(os.Getenv("LOG_LEVEL"), "info"),
		SentryDSN: os.Getenv("SENTRY_DSN"),

		StorageDriver:  defaultStr(os.Getenv("STORAGE_DRIVER"), "mgo"),
		StorageURI:     os.Getenv("STORAGE_URI"),
		StorageDB:      defaultStr(os.Getenv("STORAGE_DB"), "governance"),
		StorageMinConn: storageMinConn,
		StorageMaxConn: storageMaxConn,
		StorageIsFlush: storageIsFlush,

		CacheEngine:      defaultStr(os.Getenv("CACHE_ENGINE"), "redis"),
		CacheURL:         os.Getenv("CACHE_URL"),
		CacheDB:          cacheDB,
		CacheIsFlush:     cacheIsFlush,
		CacheExpiredTime: time.Duration(cacheExpiredTime) * time.Hour,

		OracleAdapter:       defaultStr(os.Getenv("ORACLE_ADAPTER"), "chain"),
		ChainURLs:           chainURLs,
		MembershipContract:  os.Getenv("MEMBERSHIP_CONTRACT"),
		MarketplaceContract: os.Getenv("MARKETPLACE_CONTRACT"),

		VotingPeriod:   time.Duration(votingPeriod) * time.Second,
		InitialFunding: initialFunding,
	}
	return cfg, nil
}

func defaultStr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
