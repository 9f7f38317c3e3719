package brand

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

// Service defines brand business logic.
type Service interface {
	List(ctx context.Context, category *int64) ([]*Brand, error)
	Create(ctx context.Context, req SaveBrandRequest) (*Brand, error)
	Update(ctx context.Context, id int64, req SaveBrandRequest) error
	Delete(ctx context.Context, id int64) error
}

// SaveBrandRequest carries the writable brand fields.
type SaveBrandRequest struct {
	Name        string `json:"name" validate:"required"`
	HeaderImage string `json:"header_image"`
	Category    int64  `json:"category"`
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) List(ctx context.Context, category *int64) ([]*Brand, error) {
	return s.repo.List(ctx, category)
}

func (s *service) Create(ctx context.Context, req SaveBrandRequest) (*Brand, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.BadRequest("invalid brand: " + err.Error())
	}
	b := &Brand{Name: req.Name, HeaderImage: req.HeaderImage, Category: req.Category}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id int64, req SaveBrandRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return apperr.BadRequest("invalid brand: " + err.Error())
	}
	return s.repo.Update(ctx, &Brand{
		ID:          id,
		Name:        req.Name,
		HeaderImage: req.HeaderImage,
		Category:    req.Category,
	})
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
