// Package db
package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

func (m *mongoDB) NextProposalID(ctx context.Context) (uint64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := m.db.Collection(cCounters).FindOneAndUpdate(
		ctx,
		bson.M{"_id": "proposals"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	// ids start at zero
	return uint64(counter.Seq - 1), nil
}

func (m *mongoDB) InsertProposal(ctx context.Context, proposal *types.Proposal) error {
	if _, err := m.db.Collection(cProposals).InsertOne(ctx, proposal); err != nil {
		m.logger.Warn("cannot insert proposal", zap.Error(err), zap.Uint64("id", proposal.ID))
		return err
	}
	return nil
}

func (m *mongoDB) UpdateProposal(ctx context.Context, proposal *types.Proposal) error {
	model := []mongo.WriteModel{
		mongo.NewUpdateOneModel().SetUpsert(true).SetFilter(bson.M{"id": proposal.ID}).SetUpdate(bson.M{"$set": proposal}),
	}
	if _, err := m.db.Collection(cProposals).BulkWrite(ctx, model); err != nil {
		m.logger.Warn("cannot update proposal", zap.Error(err), zap.Uint64("id", proposal.ID))
		return err
	}
	return nil
}

func (m *mongoDB) ProposalByID(ctx context.Context, proposalID uint64) (*types.Proposal, error) {
	var result *types.Proposal
	err := m.db.Collection(cProposals).FindOne(ctx, bson.M{"id": proposalID}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, types.ErrProposalNotFound
		}
		return nil, err
	}
	return result, nil
}

func (m *mongoDB) Proposals(ctx context.Context, pagination *types.Pagination) ([]*types.Proposal, uint64, error) {
	var opts []*options.FindOptions
	if pagination != nil {
		opts = []*options.FindOptions{
			options.Find().SetSort(bson.M{"id": 1}),
			options.Find().SetSkip(int64(pagination.Skip)),
			options.Find().SetLimit(int64(pagination.Limit)),
		}
	}
	cursor, err := m.db.Collection(cProposals).Find(ctx, bson.M{}, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get list proposals: %v", err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			m.logger.Warn("Error when close cursor", zap.Error(err))
		}
	}()
	var proposals []*types.Proposal
	for cursor.Next(ctx) {
		proposal := &types.Proposal{}
		if err := cursor.Decode(proposal); err != nil {
			return nil, 0, err
		}
		proposals = append(proposals, proposal)
	}
	total, err := m.ProposalCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (m *mongoDB) ProposalCount(ctx context.Context) (uint64, error) {
	total, err := m.db.Collection(cProposals).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return uint64(total), nil
}
