package product

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

// Service defines product business logic.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, f Filter) ([]*Product, error)
	Create(ctx context.Context, req SaveProductRequest) (*Product, error)
	Update(ctx context.Context, id uuid.UUID, req SaveProductRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaveProductRequest carries the writable product fields for both
// create and update.
type SaveProductRequest struct {
	Category  int64    `json:"category" validate:"required"`
	Brand     int64    `json:"brand" validate:"required"`
	NameShort string   `json:"name_short" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Colors    []string `json:"colors"`
	Storages  []int64  `json:"storages"`
	Images    []string `json:"images"`
	Tags      []string `json:"tags"`
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, f Filter) ([]*Product, error) {
	return s.repo.List(ctx, f)
}

func (s *service) Create(ctx context.Context, req SaveProductRequest) (*Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.BadRequest("invalid product: " + err.Error())
	}
	p := req.toProduct()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req SaveProductRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return apperr.BadRequest("invalid product: " + err.Error())
	}
	p := req.toProduct()
	p.ID = id
	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (req SaveProductRequest) toProduct() *Product {
	return &Product{
		Category:  req.Category,
		Brand:     req.Brand,
		NameShort: req.NameShort,
		Name:      req.Name,
		Colors:    req.Colors,
		Storages:  req.Storages,
		Images:    req.Images,
		Tags:      req.Tags,
		Prices:    []PriceEntry{},
	}
}
