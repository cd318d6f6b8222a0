package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "()", placeholders(0))
	assert.Equal(t, "($1)", placeholders(1))
	assert.Equal(t, "($1, $2, $3)", placeholders(3))
}
