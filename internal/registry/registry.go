// Package registry manages the set of named upstream repositories.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	_ "headrev/internal/xdginit"
)

const (
	configDirName     = "headrev"
	upstreamsFileName = "upstreams.yaml"

	// DefaultName is the built-in upstream queried when no name is given.
	DefaultName = "arrow"
	// DefaultURL is the https form of the upstream the tool was written
	// for; the unauthenticated git protocol is no longer served by GitHub.
	DefaultURL = "https://github.com/apache/arrow"
)

type Upstream struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Registry struct {
	Upstreams []Upstream `yaml:"upstreams"`
}

func GetRegistryPath() (string, error) {
	return filepath.Join(xdg.ConfigHome, configDirName, upstreamsFileName), nil
}

// Load reads the registry file at path; an empty path means the default
// location. A missing file yields an empty registry.
func Load(path string) (Registry, error) {
	if path == "" {
		var err error
		path, err = GetRegistryPath()
		if err != nil {
			return Registry{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Registry{}, nil
		}
		return Registry{}, fmt.Errorf("read upstreams: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return Registry{}, fmt.Errorf("parse upstreams: %w", err)
	}
	return reg, nil
}

func Save(path string, reg Registry) error {
	if path == "" {
		var err error
		path, err = GetRegistryPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(reg)
	if err != nil {
		return fmt.Errorf("marshal upstreams: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write upstreams: %w", err)
	}
	return nil
}

// Resolve maps an upstream name to its URL. File entries shadow the
// built-in default.
func (r Registry) Resolve(name string) (string, error) {
	for _, u := range r.Upstreams {
		if u.Name == name {
			return u.URL, nil
		}
	}
	if name == DefaultName {
		return DefaultURL, nil
	}
	return "", fmt.Errorf("unknown upstream %q; run list to see configured upstreams", name)
}

// All returns the configured upstreams plus the built-in default, sorted
// by name.
func (r Registry) All() []Upstream {
	all := make([]Upstream, 0, len(r.Upstreams)+1)
	seen := make(map[string]bool, len(r.Upstreams)+1)
	for _, u := range r.Upstreams {
		if seen[u.Name] {
			continue
		}
		seen[u.Name] = true
		all = append(all, u)
	}
	if !seen[DefaultName] {
		all = append(all, Upstream{Name: DefaultName, URL: DefaultURL})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Add registers an upstream, replacing any existing entry with the same
// name.
func (r *Registry) Add(name, url string) {
	for i, u := range r.Upstreams {
		if u.Name == name {
			r.Upstreams[i].URL = url
			return
		}
	}
	r.Upstreams = append(r.Upstreams, Upstream{Name: name, URL: url})
}

// Remove deletes an upstream from the file entries. Removing the built-in
// default is an error unless it has been shadowed.
func (r *Registry) Remove(name string) error {
	for i, u := range r.Upstreams {
		if u.Name == name {
			r.Upstreams = append(r.Upstreams[:i], r.Upstreams[i+1:]...)
			return nil
		}
	}
	if name == DefaultName {
		return fmt.Errorf("upstream %q is built in and cannot be removed", name)
	}
	return fmt.Errorf("unknown upstream %q", name)
}
