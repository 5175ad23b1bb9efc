package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Setting is the single election switch document. At most one exists; when
// none does, voting is treated as open.
type Setting struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	VotingOpen bool               `bson:"votingOpen" json:"votingOpen"`
}
