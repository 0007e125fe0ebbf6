package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgr/internal/config"
	"github.com/MrJamesThe3rd/ledgr/internal/ledger"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "postgres://postgres:@localhost:5432/ledgr?sslmode=disable", cfg.ConnectionString())
	assert.Empty(t, cfg.Redis.Addr)

	pc, err := cfg.PeriodConfig()
	require.NoError(t, err)
	assert.Equal(t, "Capital Account", pc.CapitalLedger)
	assert.Equal(t, "10", pc.DepreciationRate.String())
	assert.Equal(t, []ledger.Category{ledger.CategoryFixedAsset}, pc.AssetCategories)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("PERIOD_DEPRECIATION_RATE", "15.5")
	t.Setenv("PERIOD_ASSET_CATEGORIES", "fixed_asset,INVESTMENT")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, cfg.DB.Driver)

	pc, err := cfg.PeriodConfig()
	require.NoError(t, err)
	assert.Equal(t, "15.5", pc.DepreciationRate.String())
	assert.Equal(t, []ledger.Category{ledger.CategoryFixedAsset, ledger.CategoryInvestment}, pc.AssetCategories)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("PERIOD_ASSET_CATEGORIES", "FURNITURE")

	cfg, err := config.Load()
	require.NoError(t, err)

	_, err = cfg.PeriodConfig()
	assert.Error(t, err)
}
