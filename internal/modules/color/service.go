package color

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

// Service defines color business logic.
type Service interface {
	List(ctx context.Context) ([]*Color, error)
	Get(ctx context.Context, id int64) (*Color, error)
	Create(ctx context.Context, req CreateColorRequest) (*Color, error)
}

// CreateColorRequest holds the data for creating a color.
type CreateColorRequest struct {
	Name string `json:"name" validate:"required"`
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) List(ctx context.Context) ([]*Color, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*Color, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateColorRequest) (*Color, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.BadRequest("invalid color: " + err.Error())
	}
	c := &Color{Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
