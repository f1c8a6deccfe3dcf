package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Loader handles loading levels from a directory.
type Loader struct {
	Root string

	// Problems collects files LoadAll skipped because they failed to parse
	// or validate.
	Problems []error
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	l.Problems = nil
	var levels []Level

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.Problems = append(l.Problems, err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", p, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// Builtin returns the levels shipped inside the binary.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "data")
	if err != nil {
		return nil, fmt.Errorf("levels: reading builtin levels: %w", err)
	}

	var levels []Level
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(path.Ext(e.Name())) {
			continue
		}
		name := path.Join("data", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", name, err)
		}
		level, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: builtin %s: %w", name, err)
		}
		level.FilePath = "builtin:" + e.Name()
		levels = append(levels, level)
	}

	sortByID(levels)
	return levels, nil
}

// Catalog is the ordered set of playable levels.
type Catalog struct {
	Levels   []Level
	Problems []error
}

// LoadCatalog merges the builtin levels with those found under dir. A level
// in dir replaces a builtin level with the same ID. An empty dir loads only
// the builtin set.
func LoadCatalog(dir string) (*Catalog, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	c := &Catalog{Levels: builtin}
	if dir == "" {
		return c, nil
	}

	loader := NewLoader(dir)
	custom, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	c.Problems = loader.Problems

	byID := make(map[string]int, len(c.Levels))
	for i, lvl := range c.Levels {
		byID[lvl.ID] = i
	}
	for _, lvl := range custom {
		if i, ok := byID[lvl.ID]; ok {
			c.Levels[i] = lvl
			continue
		}
		c.Levels = append(c.Levels, lvl)
	}
	sortByID(c.Levels)
	return c, nil
}

// ByID finds a level.
func (c *Catalog) ByID(id string) (Level, error) {
	for _, lvl := range c.Levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// First returns the first level in order.
func (c *Catalog) First() (Level, bool) {
	if len(c.Levels) == 0 {
		return Level{}, false
	}
	return c.Levels[0], true
}

// Next returns the level after id, or false when id is the last one.
func (c *Catalog) Next(id string) (Level, bool) {
	for i, lvl := range c.Levels {
		if lvl.ID == id && i+1 < len(c.Levels) {
			return c.Levels[i+1], true
		}
	}
	return Level{}, false
}

// IDs returns all level IDs in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Levels))
	for i, lvl := range c.Levels {
		ids[i] = lvl.ID
	}
	return ids
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
