package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifiesForeignKeyViolation(t *testing.T) {
	err := &pq.Error{Code: "23503"}
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestClassifiesUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert price: %w", &pq.Error{Code: "23505"})
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
}

func TestIgnoresOtherErrors(t *testing.T) {
	assert.False(t, IsForeignKeyViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}
