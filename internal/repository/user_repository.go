package repository

import (
	"context"
	"errors"
	"time"

	"github.com/no0bAuntor/online-voting-system/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	MarkVoted(ctx context.Context, userID, candidateID primitive.ObjectID, votedAt time.Time) (bool, error)
	ResetVotes(ctx context.Context) error
	CountAll(ctx context.Context) (int64, error)
	CountVoted(ctx context.Context) (int64, error)
	CountRegistered(ctx context.Context) (int64, error)
	CountVotedRegistered(ctx context.Context) (int64, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(collection *mongo.Collection) UserRepository {
	return &userRepository{
		collection: collection,
	}
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {

	var user models.User

	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {

	var user models.User

	filter := bson.M{"username": username}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*models.User, error) {

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []*models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, user *models.User) error {

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return nil
}

// MarkVoted flips the voter's has-voted flag with a single conditional
// find-and-modify keyed on voted == false. It is the sole authoritative guard
// against duplicate ballots: of any number of concurrent calls for the same
// voter, exactly one matches a document. Returns false when the voter already
// voted (or does not exist).
func (r *userRepository) MarkVoted(ctx context.Context, userID, candidateID primitive.ObjectID, votedAt time.Time) (bool, error) {

	filter := bson.M{"_id": userID, "voted": false}
	update := bson.M{"$set": bson.M{
		"voted":          true,
		"votedAt":        votedAt,
		"candidateVoted": candidateID,
	}}

	var updated models.User

	err := r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *userRepository) ResetVotes(ctx context.Context) error {

	update := bson.M{"$set": bson.M{
		"voted":          false,
		"votedAt":        nil,
		"candidateVoted": nil,
	}}

	_, err := r.collection.UpdateMany(ctx, bson.M{}, update)
	if err != nil {
		return err
	}

	return nil
}

func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *userRepository) CountVoted(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"voted": true})
}

func (r *userRepository) CountRegistered(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"isAdmin": false})
}

func (r *userRepository) CountVotedRegistered(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"voted": true, "isAdmin": false})
}
