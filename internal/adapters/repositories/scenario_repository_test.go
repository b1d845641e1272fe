package repositories

import (
	"context"
	"database/sql"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/platform/db"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() ScenarioDocument {
	return ScenarioDocument{
		Depot: "VUB",
		Locations: []LocationDocument{
			{ID: "VUB", Lat: 50.8222329, Lon: 4.3969074},
			{ID: "Edith Cavell", Lat: 50.8139343, Lon: 4.3578839, Demand: 40},
			{ID: "Clinique Saint-Jean", Lat: 50.8543172, Lon: 4.3603786, Demand: 20},
			{ID: "Epsylon ASBL", Lat: 50.7861456, Lon: 4.3666663, Demand: 20},
		},
	}
}

func setupTestDB(t *testing.T) *sql.DB {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, InitSchema(context.Background(), conn))
	return conn
}

func TestDialectPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", SQLite.args(3))
	assert.Equal(t, "$1, $2", Postgres.args(2))
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	conn := setupTestDB(t)
	assert.NoError(t, InitSchema(context.Background(), conn))
	assert.Error(t, InitSchema(context.Background(), nil))
}

func TestSeedAndLoadScenario(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	doc := testDocument()
	doc.CurrentDraw = map[int]float64{0: 15.23, 20: 16.39, 40: 17.55}
	require.NoError(t, Seed(ctx, conn, SQLite, doc))

	sc, err := NewSQLScenarioRepository(conn).LoadScenario(ctx)
	require.NoError(t, err)

	assert.Equal(t, "VUB", sc.DepotID)
	require.Len(t, sc.Locations, 4)
	assert.Equal(t, "Edith Cavell", sc.Locations[1].ID)
	assert.Equal(t, 50.8543172, sc.Locations[2].Coordinates.Lat)
	assert.Equal(t, 40, sc.Demand.Of("Edith Cavell"))
	assert.Equal(t, 0, sc.Demand.Of("VUB"))
	assert.Equal(t, map[int]float64{0: 15.23, 20: 16.39, 40: 17.55}, sc.CurrentDraw)

	n, err := sc.Network()
	require.NoError(t, err)
	assert.Equal(t, 3, len(n.DemandPoints()))
}

func TestSeedReplacesPreviousScenario(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	require.NoError(t, Seed(ctx, conn, SQLite, testDocument()))

	smaller := testDocument()
	smaller.Locations = smaller.Locations[:2]
	require.NoError(t, Seed(ctx, conn, SQLite, smaller))

	sc, err := NewSQLScenarioRepository(conn).LoadScenario(ctx)
	require.NoError(t, err)
	assert.Len(t, sc.Locations, 2)
	assert.Nil(t, sc.CurrentDraw)
	assert.Equal(t, domain.ReferenceCurrentDrawTable().Len(), sc.Table().Len())
}

func TestSeedRejectsInvalidScenario(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	bad := testDocument()
	bad.Locations[1].Demand = -5
	err := Seed(ctx, conn, SQLite, bad)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))

	bad = testDocument()
	bad.Depot = "Nowhere"
	err = Seed(ctx, conn, SQLite, bad)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))

	bad = testDocument()
	bad.Locations[2].Lat = 123
	err = Seed(ctx, conn, SQLite, bad)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	conn := setupTestDB(t)

	raw, err := json.Marshal(testDocument())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	require.NoError(t, SeedFromJSON(ctx, conn, SQLite, path))
	sc, err := NewSQLScenarioRepository(conn).LoadScenario(ctx)
	require.NoError(t, err)
	assert.Len(t, sc.Locations, 4)

	assert.Error(t, SeedFromJSON(ctx, conn, SQLite, filepath.Join(t.TempDir(), "missing.json")))
}

func TestLoadScenarioEmptyDatabase(t *testing.T) {
	conn := setupTestDB(t)

	_, err := NewSQLScenarioRepository(conn).LoadScenario(context.Background())
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))

	_, err = NewSQLScenarioRepository(nil).LoadScenario(context.Background())
	assert.Error(t, err)
}

func TestFileScenarioRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	yamlDoc := `
depot: VUB
locations:
  - id: VUB
    lat: 50.8222329
    lon: 4.3969074
  - id: "Cliniques de l'Europe"
    lat: 50.8050334
    lon: 4.3686235
    demand: 50
current_draw:
  0: 15.23
  50: 18.13
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	sc, err := NewFileScenarioRepository(path).LoadScenario(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "VUB", sc.DepotID)
	assert.Equal(t, 50, sc.Demand.Of("Cliniques de l'Europe"))
	assert.Equal(t, map[int]float64{0: 15.23, 50: 18.13}, sc.CurrentDraw)

	_, err = sc.Network()
	assert.NoError(t, err)
}

func TestFileScenarioRepositoryErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileScenarioRepository(filepath.Join(dir, "missing.yaml")).LoadScenario(context.Background())
	assert.Error(t, err)

	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depot: [unterminated"), 0o600))
	_, err = NewFileScenarioRepository(path).LoadScenario(context.Background())
	assert.ErrorContains(t, err, "parse yaml")

	path = filepath.Join(dir, "nodepot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locations: []\n"), 0o600))
	_, err = NewFileScenarioRepository(path).LoadScenario(context.Background())
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestShippedScenarioFilesAgree(t *testing.T) {
	fromYAML, err := NewFileScenarioRepository(filepath.Join("..", "..", "..", "data", "scenario.yaml")).LoadScenario(context.Background())
	require.NoError(t, err)

	doc, err := ReadSeedFile(filepath.Join("..", "..", "..", "data", "seeds", "scenario.json"))
	require.NoError(t, err)
	fromJSON, err := doc.Scenario()
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	_, err = fromYAML.Network()
	assert.NoError(t, err)
}
