package repository

import (
	"context"
	"errors"

	"github.com/no0bAuntor/online-voting-system/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingRepository interface {
	GetVotingOpen(ctx context.Context) (bool, error)
	SetVotingOpen(ctx context.Context, open bool) error
}

type settingRepository struct {
	collection *mongo.Collection
}

func NewSettingRepository(collection *mongo.Collection) SettingRepository {
	return &settingRepository{
		collection: collection,
	}
}

// GetVotingOpen reads the single election switch document. Voting defaults
// to open while no document exists.
func (r *settingRepository) GetVotingOpen(ctx context.Context) (bool, error) {

	var setting models.Setting

	err := r.collection.FindOne(ctx, bson.M{}).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return setting.VotingOpen, nil
}

// SetVotingOpen creates or updates the single switch document. Idempotent.
func (r *settingRepository) SetVotingOpen(ctx context.Context, open bool) error {

	update := bson.M{"$set": bson.M{"votingOpen": open}}

	_, err := r.collection.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	if err != nil {
		return err
	}

	return nil
}
