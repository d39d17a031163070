package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "category_spending_pie.png", cfg.Chart.Output)
	assert.Equal(t, filepath.Join("data", "category_spending_pie.png"), cfg.ChartPath())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	want := &Config{
		Data:  DataConfig{Dir: "/var/lib/finbook"},
		Chart: ChartConfig{Output: "pie.png"},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, filepath.Join("/var/lib/finbook", "pie.png"), got.ChartPath())
}

func TestLoad_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("data:\n  dir: elsewhere\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", got.Data.Dir)
	assert.Equal(t, "category_spending_pie.png", got.Chart.Output)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	got, err := LoadOrDefault(filepath.Join(t.TempDir(), DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestChartPath_Absolute(t *testing.T) {
	cfg := &Config{
		Data:  DataConfig{Dir: "data"},
		Chart: ChartConfig{Output: "/tmp/pie.png"},
	}
	assert.Equal(t, "/tmp/pie.png", cfg.ChartPath())
}
