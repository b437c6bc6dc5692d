package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	var g Generator = Random{}
	id := g.NewID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, g.NewID())

	token, err := g.NewToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSequence(t *testing.T) {
	g := NewSequence("order")
	assert.Equal(t, "order-1", g.NewID())
	assert.Equal(t, "order-2", g.NewID())

	token, err := g.NewToken()
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
}
