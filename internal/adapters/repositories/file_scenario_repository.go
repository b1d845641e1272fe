package repositories

import (
	"context"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/platform/obs"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileScenarioRepository reads a scenario from a YAML document on disk. The
// file is re-read on every call; nothing is cached between runs.
type FileScenarioRepository struct {
	Path string
}

func NewFileScenarioRepository(path string) *FileScenarioRepository {
	return &FileScenarioRepository{Path: path}
}

func (f *FileScenarioRepository) LoadScenario(ctx context.Context) (sc *domain.Scenario, err error) {
	defer obs.Time(ctx, "load_scenario_file")(&err)

	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("load scenario file: read %q: %w", f.Path, err)
	}

	var doc ScenarioDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("load scenario file: parse yaml %q: %w", f.Path, err)
	}

	sc, err = doc.Scenario()
	if err != nil {
		return nil, fmt.Errorf("load scenario file: %w", err)
	}
	return sc, nil
}
