package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRejection(t *testing.T) {
	// Given: wrapped guard failures and an infrastructure failure
	wrapped := fmt.Errorf("table 3: %w", ErrTableFull)
	infra := errors.New("connection refused")

	// Then: only guard failures are rejections
	assert.True(t, IsRejection(wrapped))
	assert.True(t, IsRejection(ErrNoSuchTable))
	assert.False(t, IsRejection(infra))
	assert.False(t, IsRejection(nil))
}
