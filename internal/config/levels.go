package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LevelDef is one level in a level file.
type LevelDef struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LevelFile is a YAML file holding a campaign of levels.
type LevelFile struct {
	Levels []LevelDef `yaml:"levels"`
}

const levelSymbols = "@#* "

// LoadLevels parses and validates a YAML level file. Rows may only contain
// the layout symbols '@' (normal), '#' (durable), '*' (indestructible) and
// space.
func LoadLevels(path string) (*LevelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels %s: %w", path, err)
	}

	var file LevelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse levels %s: %w", path, err)
	}

	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("levels %s: no levels defined", path)
	}
	for i, level := range file.Levels {
		if len(level.Rows) == 0 {
			return nil, fmt.Errorf("levels %s: level %d (%s) has no rows", path, i+1, level.Name)
		}
		for r, row := range level.Rows {
			if idx := strings.IndexFunc(row, func(c rune) bool {
				return !strings.ContainsRune(levelSymbols, c)
			}); idx >= 0 {
				return nil, fmt.Errorf("levels %s: level %d row %d: invalid symbol %q",
					path, i+1, r+1, row[idx])
			}
		}
	}

	return &file, nil
}

// Layouts returns the raw brick layouts for the engine.
func (f *LevelFile) Layouts() [][]string {
	layouts := make([][]string, 0, len(f.Levels))
	for _, level := range f.Levels {
		layouts = append(layouts, level.Rows)
	}
	return layouts
}
