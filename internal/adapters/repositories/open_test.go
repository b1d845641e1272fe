package repositories

import (
	"context"
	"drone-route-service/internal/config"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSources(t *testing.T) {
	ctx := context.Background()
	data := filepath.Join("..", "..", "..", "data")

	cases := []config.Config{
		{ScenarioSource: config.SourceFile, ScenarioPath: filepath.Join(data, "scenario.yaml")},
		{ScenarioSource: config.SourceSQLite, DBPath: ":memory:", SeedPath: filepath.Join(data, "seeds", "scenario.json")},
	}
	for _, cfg := range cases {
		t.Run(cfg.ScenarioSource, func(t *testing.T) {
			repo, closeFn, err := Open(ctx, cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = closeFn() })

			sc, err := repo.LoadScenario(ctx)
			require.NoError(t, err)
			assert.Equal(t, "VUB", sc.DepotID)
			assert.Len(t, sc.Locations, 7)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()

	_, _, err := Open(ctx, config.Config{ScenarioSource: "redis"})
	assert.Error(t, err)

	_, _, err = Open(ctx, config.Config{ScenarioSource: config.SourceSQLite, DBPath: ":memory:", SeedPath: filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}
