package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(fmt.Errorf("insert favorite: %w", gorm.ErrDuplicatedKey)))

	assert.False(t, isDuplicateKey(nil))
	assert.False(t, isDuplicateKey(gorm.ErrInvalidData))
	assert.False(t, isDuplicateKey(fmt.Errorf("connection reset")))
}
