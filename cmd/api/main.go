package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"

	"github.com/maverickdao/governance-backend/cache"
	"github.com/maverickdao/governance-backend/cfg"
	"github.com/maverickdao/governance-backend/db"
	"github.com/maverickdao/governance-backend/gov"
	"github.com/maverickdao/governance-backend/oracle"
	"github.com/maverickdao/governance-backend/server/api"
	"github.com/maverickdao/governance-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		panic(err.Error())
	}

	serviceCfg, err := cfg.New()
	if err != nil {
		panic(err.Error())
	}

	logger, err := newLogger(serviceCfg)
	if err != nil {
		panic("cannot init logger")
	}
	logger.Info("Start governance API server...")

	defer func() {
		if err := recover(); err != nil {
			logger.Error("cannot recover")
		}
		if err := logger.Sync(); err != nil {
			logger.Error("cannot sync log")
		}
	}()

	if err := setupSentry(serviceCfg); err != nil {
		panic(err)
	}
	defer sentry.Flush(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbClient, err := db.NewClient(db.Config{
		DbAdapter: db.Adapter(serviceCfg.StorageDriver),
		DbName:    serviceCfg.StorageDB,
		URL:       serviceCfg.StorageURI,
		MinConn:   serviceCfg.StorageMinConn,
		MaxConn:   serviceCfg.StorageMaxConn,
		FlushDB:   serviceCfg.StorageIsFlush,
		Logger:    logger,
	})
	if err != nil {
		log.Panicf("cannot create storage client %s", err.Error())
	}

	cacheClient, err := cache.New(cache.Config{
		Adapter:            cache.Adapter(serviceCfg.CacheEngine),
		URL:                serviceCfg.CacheURL,
		DB:                 serviceCfg.CacheDB,
		IsFlush:            serviceCfg.CacheIsFlush,
		DefaultExpiredTime: serviceCfg.CacheExpiredTime,
		Logger:             logger,
	})
	if err != nil {
		log.Panicf("cannot create cache client %s", err.Error())
	}

	oracleCfg := oracle.Config{
		Adapter:             oracle.Adapter(serviceCfg.OracleAdapter),
		URLs:                serviceCfg.ChainURLs,
		MembershipContract:  serviceCfg.MembershipContract,
		MarketplaceContract: serviceCfg.MarketplaceContract,
		Logger:              logger,
	}
	membership, err := oracle.NewMembership(oracleCfg)
	if err != nil {
		log.Panicf("cannot create membership oracle %s", err.Error())
	}
	marketplace, err := oracle.NewMarketplace(oracleCfg)
	if err != nil {
		log.Panicf("cannot create marketplace oracle %s", err.Error())
	}

	initialFunding, err := utils.ParseAmount(serviceCfg.InitialFunding)
	if err != nil {
		log.Panicf("invalid initial funding %s", err.Error())
	}
	treasury, err := gov.NewTreasury(ctx, dbClient, initialFunding, gov.SystemClock(), logger)
	if err != nil {
		log.Panicf("cannot create treasury %s", err.Error())
	}

	engine, err := gov.New(gov.Config{
		Store:        dbClient,
		Membership:   membership,
		Marketplace:  marketplace,
		Treasury:     treasury,
		VotingPeriod: serviceCfg.VotingPeriod,
		Logger:       logger,
	})
	if err != nil {
		log.Panicf("cannot create governance engine %s", err.Error())
	}

	srv := &api.Server{}
	srv.SetLogger(logger).
		SetSecret(serviceCfg.HttpRequestSecret).
		SetStorage(dbClient).
		SetCache(cacheClient).
		SetEngine(engine)

	e := echo.New()
	go func() {
		api.Serve(e, srv, serviceCfg)
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	sigCh := make(chan os.Signal, 1)
	waitExit := make(chan bool)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for range sigCh {
			cancel()
			if err := e.Shutdown(ctx); err != nil {
				panic(err)
			}
			waitExit <- true
		}
	}()
	<-waitExit
}

func setupSentry(cfg cfg.Config) error {
	opts := sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.ServerMode,
	}
	if err := sentry.Init(opts); err != nil {
		return err
	}
	return nil
}
