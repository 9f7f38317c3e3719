package price

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

// Service defines price business logic.
type Service interface {
	List(ctx context.Context, productID *uuid.UUID) ([]*Price, error)
	Create(ctx context.Context, req SavePriceRequest) (*Price, error)
	Update(ctx context.Context, req SavePriceRequest) error
	Delete(ctx context.Context, id, productID *uuid.UUID) error
}

// SavePriceRequest carries the writable price fields. The (product,
// status) pair identifies the row on update.
type SavePriceRequest struct {
	ProductID uuid.UUID `json:"id_product" validate:"required"`
	Status    int64     `json:"status" validate:"required"`
	Price     float64   `json:"price" validate:"required,gt=0"`
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) List(ctx context.Context, productID *uuid.UUID) ([]*Price, error) {
	if productID != nil {
		return s.repo.ListByProduct(ctx, *productID)
	}
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, req SavePriceRequest) (*Price, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.BadRequest("invalid price: " + err.Error())
	}
	p := &Price{ProductID: req.ProductID, Status: req.Status, Price: req.Price}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, req SavePriceRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return apperr.BadRequest("invalid price: " + err.Error())
	}
	return s.repo.UpdateByProductStatus(ctx, &Price{
		ProductID: req.ProductID,
		Status:    req.Status,
		Price:     req.Price,
	})
}

// Delete removes prices either by price id or, when a product id is
// supplied, all rows of that product. Supplying neither is a caller
// error. A product id wins when both are present.
func (s *service) Delete(ctx context.Context, id, productID *uuid.UUID) error {
	switch {
	case productID != nil:
		return s.repo.DeleteByProduct(ctx, *productID)
	case id != nil:
		return s.repo.DeleteByID(ctx, *id)
	default:
		return apperr.BadRequest("either 'id' or 'id_product' is required")
	}
}
