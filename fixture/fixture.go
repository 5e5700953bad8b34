// SPDX-License-Identifier: MIT
//
// Package fixture loads and saves coaching graphs described as YAML or JSON.
//
//	users:
//	  - id: I
//	    name: test user I
//	    version: v1     # optional
//	  - name: newcomer  # no id: one is minted by the user.Factory
//	links:
//	  - coach: I
//	    coachee: newcomer
//
// Users are registered first, then links in file order, so every user's
// coach order is the file order. A link endpoint names a user ID or, for a
// user declared without an ID, that user's name.
package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coachgraph/core"
	"github.com/katalvlaran/coachgraph/user"
)

// Sentinel errors for fixture loading.
var (
	// ErrAmbiguousName indicates two ID-less users share a name, so links cannot address them.
	ErrAmbiguousName = errors.New("fixture: ambiguous user name")

	// ErrUnknownFormat indicates an extension other than .yaml, .yml or .json.
	ErrUnknownFormat = errors.New("fixture: unknown format")
)

// File is the on-disk graph description.
type File struct {
	Users []UserSpec `yaml:"users" json:"users"`
	Links []LinkSpec `yaml:"links,omitempty" json:"links,omitempty"`
}

// UserSpec declares one user. An empty Version means "never set".
type UserSpec struct {
	ID      string `yaml:"id,omitempty" json:"id,omitempty"`
	Name    string `yaml:"name,omitempty" json:"name,omitempty"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// LinkSpec declares one coach → coachee relationship.
type LinkSpec struct {
	Coach   string `yaml:"coach" json:"coach"`
	Coachee string `yaml:"coachee" json:"coachee"`
}

// LoadFromPath reads a fixture file (YAML or JSON).
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func LoadFromPath(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read: %w", err)
	}

	return Load(data, filepath.Ext(path))
}

// Load parses a fixture from bytes. ext is the file extension used as a
// format hint; empty means detect from content (a leading '{' is JSON).
func Load(data []byte, ext string) (*File, error) {
	var f File
	switch formatOf(ext, data) {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("fixture: parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("fixture: parse yaml: %w", err)
		}
	}

	return &f, nil
}

func formatOf(ext string, data []byte) string {
	ext = strings.ToLower(ext)
	switch ext {
	case ".yml", ".yaml":
		return ".yaml"
	case ".json":
		return ext
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		return ".json"
	}

	return ".yaml"
}

// Build registers f's users and links on a fresh graph.
// factory mints IDs for users declared without one; nil uses user.NewFactory().
func Build(f *File, factory *user.Factory, opts ...core.GraphOption) (*core.Graph, error) {
	if factory == nil {
		factory = user.NewFactory()
	}
	g := core.NewGraph(append([]core.GraphOption{core.WithCapacity(len(f.Users))}, opts...)...)

	alias := make(map[string]string)
	for i, spec := range f.Users {
		var u *user.User
		if spec.ID != "" {
			u = user.New(spec.ID, spec.Name)
		} else {
			if _, dup := alias[spec.Name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrAmbiguousName, spec.Name)
			}
			u = factory.New(spec.Name)
			alias[spec.Name] = u.ID
		}
		if spec.Version != "" {
			u.SetVersion(spec.Version)
		}
		if err := g.Register(u); err != nil {
			return nil, fmt.Errorf("fixture: user #%d: %w", i, err)
		}
	}

	resolve := func(ref string) string {
		if g.HasUser(ref) {
			return ref
		}
		if id, ok := alias[ref]; ok {
			return id
		}

		return ref
	}
	for i, l := range f.Links {
		if err := g.Link(resolve(l.Coach), resolve(l.Coachee)); err != nil {
			return nil, fmt.Errorf("fixture: link #%d: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a File. Users are sorted by ID; links are
// grouped by coachee (sorted) with coaches in recorded order, so Build on
// the result reproduces every user's coach order.
func FromGraph(g *core.Graph) *File {
	s := g.Snapshot()
	f := &File{Users: make([]UserSpec, 0, s.Len())}
	for _, u := range g.Users() {
		v, _ := u.Version()
		f.Users = append(f.Users, UserSpec{ID: u.ID, Name: u.Name, Version: v})
	}
	for _, id := range s.IDs {
		for _, coach := range s.Coaches[id] {
			f.Links = append(f.Links, LinkSpec{Coach: coach, Coachee: id})
		}
	}

	return f
}

// Encode renders f in the format named by ext (.yaml, .yml or .json).
func Encode(f *File, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(f)
	case ".json":
		return json.MarshalIndent(f, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// SaveToPath encodes f by path's extension and writes it to path.
func SaveToPath(f *File, path string) error {
	data, err := Encode(f, filepath.Ext(path))
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("fixture: write: %w", err)
	}

	return nil
}
