package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPolicy_EmptyPathReturnsDefaults(t *testing.T) {
	p, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Equal(t, 14, p.StaleInProgressDays)
	assert.Equal(t, 10000.0, p.HighBudgetAmount)
}

func TestLoadPolicy_OverridesFromFile(t *testing.T) {
	HBARUSDRate = 0.05
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	content := `
stale_in_progress_days: 7
high_budget_amount: 25000
category_aliases:
  smart-contracts: blockchain
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 7, p.StaleInProgressDays)
	assert.Equal(t, 25000.0, p.HighBudgetAmount)
	assert.Equal(t, 0.05, p.HBARUSDRate)
	assert.Equal(t, "blockchain", p.CategoryAliases["smart-contracts"])
}

func TestLoadPolicy_RejectsInvalidThreshold(t *testing.T) {
	HBARUSDRate = 0.05
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stale_in_progress_days: 0\n"), 0o600))

	_, err := LoadPolicy(path)
	assert.Error(t, err)
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
