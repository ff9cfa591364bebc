// Package db
package db

import (
	"context"
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
	"github.com/maverickdao/governance-backend/utils"
)

type treasuryDoc struct {
	Key        string `bson:"key"`
	Balance    string `bson:"balance"`
	UpdateTime int64  `bson:"updateTime"`
}

func (m *mongoDB) TreasuryBalance(ctx context.Context) (*big.Int, error) {
	var doc treasuryDoc
	err := m.db.Collection(cTreasury).FindOne(ctx, bson.M{"key": "treasury"}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, types.ErrRecordNotFound
		}
		return nil, err
	}
	return utils.ParseAmount(doc.Balance)
}

func (m *mongoDB) UpdateTreasuryBalance(ctx context.Context, balance *big.Int) error {
	doc := treasuryDoc{
		Key:        "treasury",
		Balance:    utils.FormatAmount(balance),
		UpdateTime: time.Now().Unix(),
	}
	opts := options.Update().SetUpsert(true)
	if _, err := m.db.Collection(cTreasury).UpdateOne(ctx, bson.M{"key": "treasury"}, bson.M{"$set": doc}, opts); err != nil {
		m.logger.Warn("cannot update treasury balance", zap.Error(err))
		return err
	}
	return nil
}

func (m *mongoDB) InsertTreasuryEntry(ctx context.Context, entry *types.TreasuryEntry) error {
	if _, err := m.db.Collection(cTreasuryLog).InsertOne(ctx, entry); err != nil {
		m.logger.Warn("cannot insert treasury entry", zap.Error(err))
		return err
	}
	return nil
}

func (m *mongoDB) TreasuryEntries(ctx context.Context, pagination *types.Pagination) ([]*types.TreasuryEntry, uint64, error) {
	var opts []*options.FindOptions
	if pagination != nil {
		opts = []*options.FindOptions{
			options.Find().SetSort(bson.M{"time": -1}),
			options.Find().SetSkip(int64(pagination.Skip)),
			options.Find().SetLimit(int64(pagination.Limit)),
		}
	}
	cursor, err := m.db.Collection(cTreasuryLog).Find(ctx, bson.M{}, opts...)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			m.logger.Warn("Error when close cursor", zap.Error(err))
		}
	}()
	var entries []*types.TreasuryEntry
	for cursor.Next(ctx) {
		entry := &types.TreasuryEntry{}
		if err := cursor.Decode(entry); err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	total, err := m.db.Collection(cTreasuryLog).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return entries, uint64(total), nil
}
