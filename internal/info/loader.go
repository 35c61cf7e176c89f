package info

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var builtin embed.FS

// Loader loads and caches help features from YAML files
type Loader struct {
	fsys    fs.FS
	cache   map[string]*Feature
	cacheMu sync.RWMutex
}

// NewLoader reads features from dir. An empty dir uses the built-in content.
func NewLoader(dir string) *Loader {
	if dir == "" {
		sub, _ := fs.Sub(builtin, "content")
		return NewLoaderFS(sub)
	}
	return NewLoaderFS(os.DirFS(dir))
}

// NewLoaderFS reads features from the root of fsys
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*Feature),
	}
}

// Load reads every *.yaml file. A feature's key is its file name without extension.
func (l *Loader) Load() error {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return fmt.Errorf("failed to read info directory: %w", err)
	}

	loaded := make(map[string]*Feature, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		feature, err := l.loadFeatureFile(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to load feature %s: %w", name, err)
		}
		loaded[name] = feature
	}

	l.cacheMu.Lock()
	l.cache = loaded
	l.cacheMu.Unlock()
	return nil
}

func (l *Loader) loadFeatureFile(name string) (*Feature, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var feature Feature
	if err := yaml.Unmarshal(data, &feature); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &feature, nil
}

// GetFeature returns a feature by name
func (l *Loader) GetFeature(name string) (*Feature, bool) {
	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()
	feature, ok := l.cache[name]
	return feature, ok
}

// GetTopic returns a topic within a feature
func (l *Loader) GetTopic(featureName, topicName string) (*Topic, bool) {
	feature, ok := l.GetFeature(featureName)
	if !ok {
		return nil, false
	}
	topic, ok := feature.Topics[topicName]
	if !ok {
		return nil, false
	}
	return &topic, true
}

// SearchTopic finds a topic by name across all features.
// Returns the topic, the feature it belongs to, and whether it was found.
func (l *Loader) SearchTopic(topicName string) (*Topic, string, bool) {
	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()

	names := make([]string, 0, len(l.cache))
	for name := range l.cache {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if topic, ok := l.cache[name].Topics[topicName]; ok {
			return &topic, name, true
		}
	}
	return nil, "", false
}

// FeatureNames returns the loaded feature keys, sorted
func (l *Loader) FeatureNames() []string {
	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()

	names := make([]string, 0, len(l.cache))
	for name := range l.cache {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
