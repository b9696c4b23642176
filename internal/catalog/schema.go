package catalog

import (
	"fmt"
	"strings"

	"gokata/internal/exercise"
)

// Manifest is the on-disk catalog format (exercises.yaml). Order in the
// file is the catalog order.
type Manifest struct {
	Exercises []Entry `yaml:"exercises"`
}

type Entry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Mode string `yaml:"mode"`
	Hint string `yaml:"hint"`
}

func (m Manifest) Validate() error {
	if len(m.Exercises) == 0 {
		return fmt.Errorf("catalog has no exercises")
	}
	seen := map[string]bool{}
	for i, e := range m.Exercises {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("exercise %d: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("exercise %q: duplicate name", name)
		}
		seen[name] = true
		if strings.TrimSpace(e.Path) == "" {
			return fmt.Errorf("exercise %q: path is required", name)
		}
		if !exercise.Mode(e.Mode).Valid() {
			return fmt.Errorf("exercise %q: invalid mode %q", name, e.Mode)
		}
	}
	return nil
}
