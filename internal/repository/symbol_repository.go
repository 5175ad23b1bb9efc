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

type SymbolRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Symbol, error)
	FindByName(ctx context.Context, name string) (*models.Symbol, error)
	FindByNameExcept(ctx context.Context, name string, exclude primitive.ObjectID) (*models.Symbol, error)
	FindAll(ctx context.Context) ([]*models.Symbol, error)
	Insert(ctx context.Context, symbol *models.Symbol) error
	Update(ctx context.Context, symbol *models.Symbol) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type symbolRepository struct {
	collection *mongo.Collection
}

func NewSymbolRepository(collection *mongo.Collection) SymbolRepository {
	return &symbolRepository{
		collection: collection,
	}
}

func (r *symbolRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Symbol, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *symbolRepository) FindByName(ctx context.Context, name string) (*models.Symbol, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *symbolRepository) FindByNameExcept(ctx context.Context, name string, exclude primitive.ObjectID) (*models.Symbol, error) {
	return r.findOne(ctx, bson.M{"name": name, "_id": bson.M{"$ne": exclude}})
}

func (r *symbolRepository) findOne(ctx context.Context, filter bson.M) (*models.Symbol, error) {

	var symbol models.Symbol

	err := r.collection.FindOne(ctx, filter).Decode(&symbol)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &symbol, nil
}

func (r *symbolRepository) FindAll(ctx context.Context) ([]*models.Symbol, error) {

	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	symbols := []*models.Symbol{}
	if err := cursor.All(ctx, &symbols); err != nil {
		return nil, err
	}

	return symbols, nil
}

func (r *symbolRepository) Insert(ctx context.Context, symbol *models.Symbol) error {

	res, err := r.collection.InsertOne(ctx, symbol)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		symbol.ID = id
	}

	return nil
}

func (r *symbolRepository) Update(ctx context.Context, symbol *models.Symbol) error {

	filter := bson.M{"_id": symbol.ID}
	update := bson.M{"$set": bson.M{
		"name":        symbol.Name,
		"imageUrl":    symbol.ImageURL,
		"description": symbol.Description,
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	return nil
}

func (r *symbolRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return res.DeletedCount > 0, nil
}
