// Package testutil provides in-memory implementations of the repository
// interfaces so service and handler tests can run without a MongoDB
// deployment. The fake user repository reproduces the conditional
// mark-voted semantics under a mutex, which keeps the duplicate-ballot race
// observable in tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/no0bAuntor/online-voting-system/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FakeUserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User

	// BeforeMarkVoted, when set, runs before the conditional update. Tests
	// use it to interleave a competing write.
	BeforeMarkVoted func()
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{
		users: make(map[primitive.ObjectID]*models.User),
	}
}

func (r *FakeUserRepository) AddUser(user *models.User) primitive.ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	r.users[user.ID] = &copied
	return user.ID
}

func (r *FakeUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *FakeUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := []*models.User{}
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *FakeUserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *FakeUserRepository) MarkVoted(ctx context.Context, userID, candidateID primitive.ObjectID, votedAt time.Time) (bool, error) {
	if r.BeforeMarkVoted != nil {
		r.BeforeMarkVoted()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok || user.Voted {
		return false, nil
	}
	user.Voted = true
	at := votedAt
	user.VotedAt = &at
	cid := candidateID
	user.CandidateVoted = &cid
	return true, nil
}

func (r *FakeUserRepository) ResetVotes(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		user.Voted = false
		user.VotedAt = nil
		user.CandidateVoted = nil
	}
	return nil
}

func (r *FakeUserRepository) CountAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *FakeUserRepository) CountVoted(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, user := range r.users {
		if user.Voted {
			n++
		}
	}
	return n, nil
}

func (r *FakeUserRepository) CountRegistered(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, user := range r.users {
		if !user.IsAdmin {
			n++
		}
	}
	return n, nil
}

func (r *FakeUserRepository) CountVotedRegistered(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, user := range r.users {
		if user.Voted && !user.IsAdmin {
			n++
		}
	}
	return n, nil
}

type FakeCandidateRepository struct {
	mu         sync.Mutex
	candidates []*models.Candidate
}

func NewFakeCandidateRepository() *FakeCandidateRepository {
	return &FakeCandidateRepository{}
}

func (r *FakeCandidateRepository) AddCandidate(candidate *models.Candidate) primitive.ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if candidate.ID.IsZero() {
		candidate.ID = primitive.NewObjectID()
	}
	copied := *candidate
	r.candidates = append(r.candidates, &copied)
	return candidate.ID
}

func (r *FakeCandidateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, candidate := range r.candidates {
		if candidate.ID == id {
			copied := *candidate
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeCandidateRepository) FindAll(ctx context.Context) ([]*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidates := []*models.Candidate{}
	for _, candidate := range r.candidates {
		copied := *candidate
		candidates = append(candidates, &copied)
	}
	return candidates, nil
}

func (r *FakeCandidateRepository) FindAllByVotes(ctx context.Context) ([]*models.Candidate, error) {
	candidates, _ := r.FindAll(ctx)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Votes > candidates[j].Votes
	})
	return candidates, nil
}

func (r *FakeCandidateRepository) Insert(ctx context.Context, candidate *models.Candidate) error {
	r.AddCandidate(candidate)
	return nil
}

func (r *FakeCandidateRepository) IncrementVotes(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, candidate := range r.candidates {
		if candidate.ID == id {
			candidate.Votes++
			return nil
		}
	}
	return nil
}

func (r *FakeCandidateRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, candidate := range r.candidates {
		if candidate.ID == id {
			r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeCandidateRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates = nil
	return nil
}

func (r *FakeCandidateRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.candidates)), nil
}

type FakeSettingRepository struct {
	mu   sync.Mutex
	open *bool
}

func NewFakeSettingRepository() *FakeSettingRepository {
	return &FakeSettingRepository{}
}

func (r *FakeSettingRepository) GetVotingOpen(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open == nil {
		// No switch document yet: voting defaults to open.
		return true, nil
	}
	return *r.open, nil
}

func (r *FakeSettingRepository) SetVotingOpen(ctx context.Context, open bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open = &open
	return nil
}

type FakeSymbolRepository struct {
	mu      sync.Mutex
	symbols []*models.Symbol
}

func NewFakeSymbolRepository() *FakeSymbolRepository {
	return &FakeSymbolRepository{}
}

func (r *FakeSymbolRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Symbol, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, symbol := range r.symbols {
		if symbol.ID == id {
			copied := *symbol
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeSymbolRepository) FindByName(ctx context.Context, name string) (*models.Symbol, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, symbol := range r.symbols {
		if symbol.Name == name {
			copied := *symbol
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeSymbolRepository) FindByNameExcept(ctx context.Context, name string, exclude primitive.ObjectID) (*models.Symbol, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, symbol := range r.symbols {
		if symbol.Name == name && symbol.ID != exclude {
			copied := *symbol
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeSymbolRepository) FindAll(ctx context.Context) ([]*models.Symbol, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	symbols := []*models.Symbol{}
	for _, symbol := range r.symbols {
		copied := *symbol
		symbols = append(symbols, &copied)
	}
	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].CreatedAt.After(symbols[j].CreatedAt)
	})
	return symbols, nil
}

func (r *FakeSymbolRepository) Insert(ctx context.Context, symbol *models.Symbol) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if symbol.ID.IsZero() {
		symbol.ID = primitive.NewObjectID()
	}
	copied := *symbol
	r.symbols = append(r.symbols, &copied)
	return nil
}

func (r *FakeSymbolRepository) Update(ctx context.Context, symbol *models.Symbol) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.symbols {
		if existing.ID == symbol.ID {
			copied := *symbol
			r.symbols[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *FakeSymbolRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, symbol := range r.symbols {
		if symbol.ID == id {
			r.symbols = append(r.symbols[:i], r.symbols[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// NopLogger is a zap.Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...interface{}) {}
func (NopLogger) Infof(format string, args ...interface{})  {}
func (NopLogger) Warnf(format string, args ...interface{})  {}
func (NopLogger) Errorf(format string, args ...interface{}) {}
func (NopLogger) Fatalf(format string, args ...interface{}) {}
func (NopLogger) Info(args ...interface{})                  {}
func (NopLogger) Warn(args ...interface{})                  {}
func (NopLogger) Error(args ...interface{})                 {}
func (NopLogger) Fatal(args ...interface{})                 {}
