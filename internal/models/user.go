package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered voter. Voted, VotedAt and CandidateVoted are set
// together, exactly once, by the ballot service; an election reset clears all
// three in bulk. CandidateVoted is an audit back-pointer only and is never
// used to recompute tallies.
type User struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Username       string              `bson:"username" json:"username"`
	Password       string              `bson:"password" json:"-"`
	IsAdmin        bool                `bson:"isAdmin" json:"isAdmin"`
	Voted          bool                `bson:"voted" json:"voted"`
	VotedAt        *time.Time          `bson:"votedAt,omitempty" json:"votedAt,omitempty"`
	CandidateVoted *primitive.ObjectID `bson:"candidateVoted,omitempty" json:"candidateVoted,omitempty"`
}
