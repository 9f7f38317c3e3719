package price

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/eduolivag5/backmarket-api/internal/apperr"
)

type fakeRepo struct {
	err error

	deletedID      *uuid.UUID
	deletedProduct *uuid.UUID
}

func (f *fakeRepo) List(context.Context) ([]*Price, error) { return nil, f.err }
func (f *fakeRepo) Create(context.Context, *Price) error   { return f.err }

func (f *fakeRepo) ListByProduct(context.Context, uuid.UUID) ([]*Price, error) {
	return nil, f.err
}

func (f *fakeRepo) UpdateByProductStatus(context.Context, *Price) error {
	return f.err
}

func (f *fakeRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	f.deletedID = &id
	return f.err
}

func (f *fakeRepo) DeleteByProduct(_ context.Context, productID uuid.UUID) error {
	f.deletedProduct = &productID
	return f.err
}

func TestDeleteRequiresDisambiguation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	err := svc.Delete(context.Background(), nil, nil)

	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestDeletePrefersProductID(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	id := uuid.New()
	productID := uuid.New()

	err := svc.Delete(context.Background(), &id, &productID)

	assert.NoError(t, err)
	assert.Nil(t, repo.deletedID)
	assert.Equal(t, productID, *repo.deletedProduct)
}

func TestDeleteByID(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	id := uuid.New()

	err := svc.Delete(context.Background(), &id, nil)

	assert.NoError(t, err)
	assert.Equal(t, id, *repo.deletedID)
}

func TestCreateRejectsZeroPrice(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), SavePriceRequest{
		ProductID: uuid.New(),
		Status:    1,
		Price:     0,
	})

	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestCreateReturnsRow(t *testing.T) {
	svc := NewService(&fakeRepo{})
	productID := uuid.New()

	p, err := svc.Create(context.Background(), SavePriceRequest{
		ProductID: productID,
		Status:    2,
		Price:     349.9,
	})

	assert.NoError(t, err)
	assert.Equal(t, productID, p.ProductID)
	assert.Equal(t, 349.9, p.Price)
}
