package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("alert", "a-1")

	assert.EqualError(t, err, "alert with ID 'a-1' not found")
	assert.True(t, IsNotFoundError(err))
	assert.True(t, IsNotFoundError(fmt.Errorf("resolve: %w", err)))
	assert.False(t, IsNotFoundError(ErrInvalidTimeframe))
	assert.False(t, IsNotFoundError(nil))
}
