// SPDX-License-Identifier: MIT
package fixture_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachgraph/core"
	"github.com/katalvlaran/coachgraph/fixture"
	"github.com/katalvlaran/coachgraph/infection"
	"github.com/katalvlaran/coachgraph/user"
)

// sequence returns an IDFunc yielding "gen-1", "gen-2", ...
func sequence() user.IDFunc {
	n := 0
	return func() string {
		n++
		return "gen-" + strconv.Itoa(n)
	}
}

func TestLoadFromPath_ExampleYAML(t *testing.T) {
	f, err := fixture.LoadFromPath(filepath.Join("testdata", "example.yaml"))
	require.NoError(t, err)
	require.Len(t, f.Users, 7)
	require.Len(t, f.Links, 7)

	g, err := fixture.Build(f, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, g.UserCount())
	assert.Equal(t, 7, g.LinkCount())

	coaches, err := g.Coaches("V")
	require.NoError(t, err)
	assert.Equal(t, []string{"II", "VII"}, coaches, "coach order follows the file")
}

// TestExample_LimitedFive loads the reference graph and infects five users.
func TestExample_LimitedFive(t *testing.T) {
	f, err := fixture.LoadFromPath(filepath.Join("testdata", "example.yaml"))
	require.NoError(t, err)
	g, err := fixture.Build(f, nil)
	require.NoError(t, err)

	res, err := infection.Limited(g, "v2", 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"II", "III", "V", "VI", "VII"}, res.Infected)
	for _, id := range []string{"I", "IV"} {
		v, _, err := g.Version(id)
		require.NoError(t, err)
		assert.Equal(t, "v1", v, id)
	}
}

func TestLoadFromPath_JSONWithGeneratedIDs(t *testing.T) {
	f, err := fixture.LoadFromPath(filepath.Join("testdata", "teams.json"))
	require.NoError(t, err)

	g, err := fixture.Build(f, user.NewFactory(user.WithIDFunc(sequence())))
	require.NoError(t, err)
	assert.Equal(t, []string{"gen-1", "gen-2", "lead", "solo"}, g.IDs())
	assert.True(t, g.HasLink("lead", "gen-1"))
	assert.True(t, g.HasLink("gen-1", "gen-2"))

	alice, err := g.User("gen-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", alice.Name)
	_, set := alice.Version()
	assert.False(t, set)

	v, set, err := g.Version("lead")
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, "stable", v)
}

func TestLoad_DetectsFormat(t *testing.T) {
	cases := []struct {
		name string
		data string
		ext  string
	}{
		{"yaml ext", "users:\n  - id: a\n", ".yaml"},
		{"yml ext", "users:\n  - id: a\n", ".YML"},
		{"json ext", `{"users":[{"id":"a"}]}`, ".json"},
		{"json sniffed", `  {"users":[{"id":"a"}]}`, ""},
		{"yaml sniffed", "users: [{id: a}]", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := fixture.Load([]byte(tc.data), tc.ext)
			require.NoError(t, err)
			require.Len(t, f.Users, 1)
			assert.Equal(t, "a", f.Users[0].ID)
		})
	}

	_, err := fixture.Load([]byte("users: [oops"), ".yaml")
	require.Error(t, err)
	_, err = fixture.Load([]byte(`{"users": 3}`), "")
	require.Error(t, err)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		file fixture.File
		want error
	}{
		{
			name: "duplicate id",
			file: fixture.File{Users: []fixture.UserSpec{{ID: "a"}, {ID: "a"}}},
			want: core.ErrDuplicateVertex,
		},
		{
			name: "ambiguous name",
			file: fixture.File{Users: []fixture.UserSpec{{Name: "x"}, {Name: "x"}}},
			want: fixture.ErrAmbiguousName,
		},
		{
			name: "unknown endpoint",
			file: fixture.File{
				Users: []fixture.UserSpec{{ID: "a"}},
				Links: []fixture.LinkSpec{{Coach: "a", Coachee: "ghost"}},
			},
			want: core.ErrUnknownVertex,
		},
		{
			name: "self link",
			file: fixture.File{
				Users: []fixture.UserSpec{{ID: "a"}},
				Links: []fixture.LinkSpec{{Coach: "a", Coachee: "a"}},
			},
			want: core.ErrSelfReference,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixture.Build(&tc.file, nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_StrictLinksOption(t *testing.T) {
	f := &fixture.File{
		Users: []fixture.UserSpec{{ID: "a"}, {ID: "b"}},
		Links: []fixture.LinkSpec{{Coach: "a", Coachee: "b"}, {Coach: "a", Coachee: "b"}},
	}
	g, err := fixture.Build(f, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, g.LinkCount())

	_, err = fixture.Build(f, nil, core.WithStrictLinks())
	require.ErrorIs(t, err, core.ErrDuplicateLink)
}

// TestSaveToPath_RoundTrip writes an infected graph and reloads it.
func TestSaveToPath_RoundTrip(t *testing.T) {
	f, err := fixture.LoadFromPath(filepath.Join("testdata", "example.yaml"))
	require.NoError(t, err)
	g, err := fixture.Build(f, nil)
	require.NoError(t, err)
	_, err = infection.Total(g, "IV", "v2")
	require.NoError(t, err)

	for _, ext := range []string{".yaml", ".json"} {
		path := filepath.Join(t.TempDir(), "graph"+ext)
		require.NoError(t, fixture.SaveToPath(fixture.FromGraph(g), path))

		back, err := fixture.LoadFromPath(path)
		require.NoError(t, err)
		if diff := cmp.Diff(fixture.FromGraph(g), back); diff != "" {
			t.Fatalf("%s round trip mismatch (-want +got):\n%s", ext, diff)
		}

		g2, err := fixture.Build(back, nil)
		require.NoError(t, err)
		for _, id := range g.IDs() {
			want, _ := g.Coaches(id)
			got, _ := g2.Coaches(id)
			assert.Equal(t, want, got, "coaches of %s", id)
		}
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := fixture.Encode(&fixture.File{}, ".toml")
	require.ErrorIs(t, err, fixture.ErrUnknownFormat)
}
