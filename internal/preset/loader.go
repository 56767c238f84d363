package preset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader loads and caches presets from the filesystem.
type Loader struct {
	rootDir string
	presets map[string]Preset
	mu      sync.RWMutex
}

// NewLoader creates a loader and reads all presets under rootDir.
func NewLoader(rootDir string) (*Loader, error) {
	l := &Loader{
		rootDir: rootDir,
		presets: make(map[string]Preset),
	}

	if err := l.loadAll(); err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}

	slog.Info("presets loaded", "count", len(l.presets))
	return l, nil
}

// Get returns a preset by ID.
func (l *Loader) Get(id string) (Preset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.presets[id]
	return p, ok
}

// All returns all loaded presets sorted by name.
func (l *Loader) All() []Preset {
	l.mu.RLock()
	defer l.mu.RUnlock()
	presets := make([]Preset, 0, len(l.presets))
	for _, p := range l.presets {
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets
}

func (l *Loader) loadAll() error {
	return filepath.Walk(l.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		return l.loadPreset(path)
	})
}

func (l *Loader) loadPreset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		slog.Warn("skipping invalid preset YAML", "path", path, "error", err)
		return nil
	}

	if p.ID == "" {
		return nil // Not a preset file
	}

	l.mu.Lock()
	l.presets[p.ID] = p
	l.mu.Unlock()

	return nil
}
