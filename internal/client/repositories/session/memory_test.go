package session

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNoSession)

	u := &models.User{ID: 7, Name: "Luis", Token: "t"}
	require.NoError(t, s.Save(ctx, u))
	u.Name = "changed"

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Luis", got.Name)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	_, err = s.Load(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}
