package service

import (
	"context"
	"strings"
	"time"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SymbolService interface {
	List(ctx context.Context) ([]*models.Symbol, error)
	Add(ctx context.Context, name, description, imageURL string) (*models.Symbol, error)
	Update(ctx context.Context, id primitive.ObjectID, name, description, imageURL string) (*models.Symbol, error)
	Delete(ctx context.Context, id primitive.ObjectID) (string, error)
}

type symbolService struct {
	symbolRepository repository.SymbolRepository
}

func NewSymbolService(symbolRepository repository.SymbolRepository) SymbolService {
	return &symbolService{
		symbolRepository: symbolRepository,
	}
}

func (s *symbolService) List(ctx context.Context) ([]*models.Symbol, error) {
	return s.symbolRepository.FindAll(ctx)
}

func (s *symbolService) Add(ctx context.Context, name, description, imageURL string) (*models.Symbol, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrSymbolNameRequired
	}
	if imageURL == "" {
		return nil, ErrSymbolImageRequired
	}

	existing, err := s.symbolRepository.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSymbolNameTaken
	}

	symbol := &models.Symbol{
		Name:        name,
		ImageURL:    imageURL,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}

	if err := s.symbolRepository.Insert(ctx, symbol); err != nil {
		return nil, err
	}

	return symbol, nil
}

// Update changes only the fields provided: an empty imageURL keeps the
// current image, name changes are re-checked for uniqueness.
func (s *symbolService) Update(ctx context.Context, id primitive.ObjectID, name, description, imageURL string) (*models.Symbol, error) {

	symbol, err := s.symbolRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if symbol == nil {
		return nil, ErrSymbolNotFound
	}

	name = strings.TrimSpace(name)
	if name != "" && name != symbol.Name {
		existing, err := s.symbolRepository.FindByNameExcept(ctx, name, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSymbolNameTaken
		}
		symbol.Name = name
	}

	if description != "" {
		symbol.Description = strings.TrimSpace(description)
	}

	if imageURL != "" {
		symbol.ImageURL = imageURL
	}

	if err := s.symbolRepository.Update(ctx, symbol); err != nil {
		return nil, err
	}

	return symbol, nil
}

func (s *symbolService) Delete(ctx context.Context, id primitive.ObjectID) (string, error) {

	symbol, err := s.symbolRepository.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if symbol == nil {
		return "", ErrSymbolNotFound
	}

	if _, err := s.symbolRepository.DeleteByID(ctx, id); err != nil {
		return "", err
	}

	return symbol.Name, nil
}
