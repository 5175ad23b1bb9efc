package repository

import (
	"context"
	"errors"

	"github.com/no0bAuntor/online-voting-system/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CandidateRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Candidate, error)
	FindAll(ctx context.Context) ([]*models.Candidate, error)
	FindAllByVotes(ctx context.Context) ([]*models.Candidate, error)
	Insert(ctx context.Context, candidate *models.Candidate) error
	IncrementVotes(ctx context.Context, id primitive.ObjectID) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type candidateRepository struct {
	collection *mongo.Collection
}

func NewCandidateRepository(collection *mongo.Collection) CandidateRepository {
	return &candidateRepository{
		collection: collection,
	}
}

func (r *candidateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Candidate, error) {

	var candidate models.Candidate

	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&candidate)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &candidate, nil
}

func (r *candidateRepository) FindAll(ctx context.Context) ([]*models.Candidate, error) {
	return r.findAll(ctx, nil)
}

func (r *candidateRepository) FindAllByVotes(ctx context.Context) ([]*models.Candidate, error) {
	return r.findAll(ctx, options.Find().SetSort(bson.M{"votes": -1}))
}

func (r *candidateRepository) findAll(ctx context.Context, opts *options.FindOptions) ([]*models.Candidate, error) {

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	candidates := []*models.Candidate{}
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (r *candidateRepository) Insert(ctx context.Context, candidate *models.Candidate) error {

	res, err := r.collection.InsertOne(ctx, candidate)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		candidate.ID = id
	}

	return nil
}

func (r *candidateRepository) IncrementVotes(ctx context.Context, id primitive.ObjectID) error {

	filter := bson.M{"_id": id}
	update := bson.M{"$inc": bson.M{"votes": 1}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	return nil
}

func (r *candidateRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return res.DeletedCount > 0, nil
}

func (r *candidateRepository) DeleteAll(ctx context.Context) error {

	_, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return err
	}

	return nil
}

func (r *candidateRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
