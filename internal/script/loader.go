package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads a single script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	s.FilePath = path
	return s, nil
}

// Loader handles loading scripts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new script loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all script files.
// Invalid files are skipped. Returns scripts sorted by ID.
func (l *Loader) LoadAll() ([]Script, error) {
	var scripts []Script

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		s, err := Load(path)
		if err != nil {
			return nil
		}
		scripts = append(scripts, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].ID < scripts[j].ID
	})
	return scripts, nil
}

// LoadByID loads a specific script by ID.
func (l *Loader) LoadByID(id string) (Script, error) {
	scripts, err := l.LoadAll()
	if err != nil {
		return Script{}, err
	}
	for _, s := range scripts {
		if s.ID == id {
			return s, nil
		}
	}
	return Script{}, fmt.Errorf("script not found: %s", id)
}
