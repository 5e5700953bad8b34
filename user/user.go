// SPDX-License-Identifier: MIT
//
// Package user defines the User record mutated by infections and the Factory
// that mints users with fresh identities.
//
// A User is a plain data holder: an immutable ID, a display name, and a
// version tag that stays unset until the first assignment. Users carry no
// lock; once registered in a core.Graph, mutate them through the graph.
package user

import (
	"github.com/google/uuid"
)

// User is a vertex of the coaching graph.
type User struct {
	// ID is the globally unique identity. It never changes after construction.
	ID string

	// Name is display metadata; algorithms never read it.
	Name string

	version   string
	versioned bool
}

// New returns a user with an explicit ID and no version.
func New(id, name string) *User {
	return &User{ID: id, Name: name}
}

// Version reports the current version tag and whether one was ever assigned.
func (u *User) Version() (string, bool) {
	return u.version, u.versioned
}

// SetVersion assigns the version tag.
func (u *User) SetVersion(v string) {
	u.version = v
	u.versioned = true
}

// Clone returns an independent copy of u.
func (u *User) Clone() *User {
	c := *u

	return &c
}

// IDFunc generates a fresh identity. Implementations must not repeat values
// within the lifetime of a graph.
type IDFunc func() string

// UUIDFunc is the default IDFunc: a random (version 4) UUID string.
func UUIDFunc() string {
	return uuid.NewString()
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithIDFunc replaces the identity source. A nil fn is ignored.
func WithIDFunc(fn IDFunc) FactoryOption {
	return func(f *Factory) {
		if fn != nil {
			f.idFn = fn
		}
	}
}

// WithInitialVersion makes every produced user start with version v.
func WithInitialVersion(v string) FactoryOption {
	return func(f *Factory) {
		f.initial = v
		f.hasInitial = true
	}
}

// Factory mints users with fresh IDs.
type Factory struct {
	idFn       IDFunc
	initial    string
	hasInitial bool
}

// NewFactory returns a Factory backed by UUIDFunc unless overridden.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{idFn: UUIDFunc}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// New creates a user named name with a fresh ID.
func (f *Factory) New(name string) *User {
	u := &User{ID: f.idFn(), Name: name}
	if f.hasInitial {
		u.SetVersion(f.initial)
	}

	return u
}
