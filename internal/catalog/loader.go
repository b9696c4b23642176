package catalog

import (
	"fmt"
	"os"

	"gokata/internal/exercise"

	"gopkg.in/yaml.v3"
)

// FSLoader reads the exercise catalog from a manifest file.
type FSLoader struct{}

func NewLoader() *FSLoader { return &FSLoader{} }

// Load reads and validates the manifest at path. The returned slice is the
// fixed catalog order; callers must not mutate it.
func (l *FSLoader) Load(path string) ([]exercise.Exercise, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(b, &manifest); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	out := make([]exercise.Exercise, 0, len(manifest.Exercises))
	for _, e := range manifest.Exercises {
		out = append(out, exercise.Exercise{
			Name: e.Name,
			Path: e.Path,
			Mode: exercise.Mode(e.Mode),
			Hint: e.Hint,
		})
	}
	return out, nil
}

// FindByName returns the catalog index of the named exercise, or -1.
func FindByName(exercises []exercise.Exercise, name string) int {
	for i, ex := range exercises {
		if ex.Name == name {
			return i
		}
	}
	return -1
}
