// Package db
package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	cProposals   = "Proposals"
	cTreasury    = "Treasury"
	cTreasuryLog = "TreasuryLog"
	cCounters    = "Counters"
)

type mongoDB struct {
	logger *zap.Logger
	client *mongo.Client
	db     *mongo.Database
}

func newMongoDB(cfg Config) (*mongoDB, error) {
	ctx := context.Background()

	mgoOptions := options.Client()
	mgoOptions.ApplyURI(cfg.URL)
	mgoOptions.SetMinPoolSize(uint64(cfg.MinConn))
	mgoOptions.SetMaxPoolSize(uint64(cfg.MaxConn))
	mgoClient, err := mongo.NewClient(mgoOptions)
	if err != nil {
		return nil, err
	}
	if err := mgoClient.Connect(ctx); err != nil {
		return nil, err
	}

	dbClient := &mongoDB{
		logger: cfg.Logger,
		client: mgoClient,
		db:     mgoClient.Database(cfg.DbName),
	}

	if cfg.FlushDB {
		cfg.Logger.Info("Start flush database")
		if err := dbClient.db.Drop(ctx); err != nil {
			return nil, err
		}
	}
	_ = createIndexes(dbClient)

	return dbClient, nil
}

func createIndexes(dbClient *mongoDB) error {
	type CIndex struct {
		c     string
		model []mongo.IndexModel
	}

	indexes := []CIndex{
		// one record per proposal id, queried by id
		{c: cProposals, model: []mongo.IndexModel{{Keys: bson.M{"id": -1}, Options: options.Index().SetUnique(true).SetSparse(true)}}},
		// ledger is listed newest first
		{c: cTreasuryLog, model: []mongo.IndexModel{{Keys: bson.M{"time": -1}, Options: options.Index().SetSparse(true)}}},
		{c: cTreasuryLog, model: []mongo.IndexModel{{Keys: bson.M{"proposalId": 1}, Options: options.Index().SetSparse(true)}}},
	}
	for _, cIdx := range indexes {
		if _, err := dbClient.db.Collection(cIdx.c).Indexes().CreateMany(context.Background(), cIdx.model); err != nil {
			return err
		}
	}
	return nil
}

func (m *mongoDB) ping() error {
	return m.client.Ping(context.Background(), nil)
}

func (m *mongoDB) dropDatabase(ctx context.Context) error {
	return m.db.Drop(ctx)
}
