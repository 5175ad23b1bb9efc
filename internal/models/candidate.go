package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Candidate struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Party    string             `bson:"party" json:"party"`
	PhotoURL string             `bson:"photoUrl" json:"photoUrl"`
	Votes    int64              `bson:"votes" json:"votes"`
}
