package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/shop-backoffice/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, []string{"localhost:9092"}, c.KafkaBrokers)
	assert.Equal(t, config.DriverPostgres, c.StoreDriver)
	assert.Equal(t, 24*time.Hour, c.IdempotencyTTL)
	assert.True(t, c.TaxRate.IsZero())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("TAX_RATE", "0.0825")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CATALOG_CACHE_TTL", "30s")

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.KafkaBrokers)
	assert.Equal(t, "0.0825", c.TaxRate.String())
	assert.Equal(t, config.DriverMemory, c.StoreDriver)
	assert.Equal(t, 30*time.Second, c.CatalogCacheTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	_, err := config.Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("TAX_RATE", "-0.1")
	_, err = config.Load()
	assert.ErrorContains(t, err, "TAX_RATE")

	t.Setenv("TAX_RATE", "abc")
	_, err = config.Load()
	assert.Error(t, err)
}
