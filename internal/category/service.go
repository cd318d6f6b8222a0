package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidMapping = errors.New("invalid category mapping")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	// FindMatch returns the category of the longest pattern contained in the
	// raw description, or "" when none matches.
	FindMatch(ctx context.Context, userID uuid.UUID, rawDescription string) (string, error)
	CreateMapping(ctx context.Context, userID uuid.UUID, rawPattern, category string) error
	ListMappings(ctx context.Context, userID uuid.UUID) ([]Mapping, error)
}

type Mapping struct {
	RawPattern string
	Category   string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category learned for a raw bank description, or "".
func (s *Service) Suggest(ctx context.Context, userID uuid.UUID, rawDescription string) (string, error) {
	return s.repo.FindMatch(ctx, userID, rawDescription)
}

// Learn remembers that descriptions containing rawPattern belong to category.
func (s *Service) Learn(ctx context.Context, userID uuid.UUID, rawPattern, category string) error {
	rawPattern, category = strings.TrimSpace(rawPattern), strings.TrimSpace(category)
	if rawPattern == "" || category == "" {
		return fmt.Errorf("%w: pattern and category are required", ErrInvalidMapping)
	}

	return s.repo.CreateMapping(ctx, userID, rawPattern, category)
}

func (s *Service) Mappings(ctx context.Context, userID uuid.UUID) ([]Mapping, error) {
	return s.repo.ListMappings(ctx, userID)
}
