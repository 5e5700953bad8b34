package user_test

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coachgraph/user"
)

func TestUser_VersionUnsetUntilAssigned(t *testing.T) {
	u := user.New("I", "test user I")

	v, ok := u.Version()
	assert.False(t, ok)
	assert.Empty(t, v)

	u.SetVersion("v2")
	v, ok = u.Version()
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestUser_CloneIsIndependent(t *testing.T) {
	u := user.New("I", "test user I")
	u.SetVersion("v1")

	c := u.Clone()
	c.SetVersion("v2")

	v, _ := u.Version()
	assert.Equal(t, "v1", v)
	assert.Equal(t, u.ID, c.ID)
}

func TestFactory_DefaultUUID(t *testing.T) {
	f := user.NewFactory()
	a, b := f.New("a"), f.New("b")

	require.NotEqual(t, a.ID, b.ID)
	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	_, ok := a.Version()
	assert.False(t, ok)
}

func TestFactory_Options(t *testing.T) {
	n := 0
	f := user.NewFactory(
		user.WithIDFunc(func() string { n++; return "u" + strconv.Itoa(n) }),
		user.WithInitialVersion("stable"),
		user.WithIDFunc(nil), // ignored
	)

	u := f.New("first")
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "first", u.Name)
	v, ok := u.Version()
	assert.True(t, ok)
	assert.Equal(t, "stable", v)
	assert.Equal(t, "u2", f.New("second").ID)
}
