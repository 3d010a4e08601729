package memory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/shop-backoffice/internal/catalog/domain"
	"github.com/dmehra2102/shop-backoffice/internal/catalog/infrastructure/memory"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"p1","sku":"S1","name":"Mug","price":"7.50","active":true}]`), 0o600))

	c, err := memory.LoadFile(path)
	require.NoError(t, err)

	p, err := c.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "7.5", p.Price.String())
	assert.True(t, p.Active)

	_, err = c.GetProduct(context.Background(), "p2")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	_, err = memory.LoadFile(path)
	assert.Error(t, err)
}
