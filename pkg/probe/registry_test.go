package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(name string, ok bool) Probe {
	return Func(name, func(context.Context) Result {
		return Result{OK: ok, Details: Text(name)}
	})
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	reg, err := NewRegistryFrom(constant("c", true), constant("a", false), constant("b", true))

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, reg.Names())
	assert.Equal(t, 3, reg.Len())
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(constant("model", true)))

	err := reg.Register(constant("model", false))

	assert.ErrorIs(t, err, ErrDuplicateProbe)
	assert.Equal(t, 1, reg.Len())

	p, ok := reg.Lookup("model")
	require.True(t, ok)
	assert.True(t, p.Check(context.Background()).OK, "first registration must be kept")
}

func TestRegistryRejectsInvalidProbes(t *testing.T) {
	reg := NewRegistry()

	assert.ErrorIs(t, reg.Register(nil), ErrInvalidProbe)
	assert.ErrorIs(t, reg.Register(constant("", true)), ErrInvalidProbe)
	assert.ErrorIs(t, reg.RegisterFunc("nobody", nil), ErrInvalidProbe)
	assert.Zero(t, reg.Len())
}

func TestRegisterFunc(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterFunc("answer", func(context.Context) Result {
		return Result{OK: true, Details: Text("42")}
	}))

	p, ok := reg.Lookup("answer")
	require.True(t, ok)
	assert.Equal(t, "answer", p.Name())
	assert.Equal(t, Text("42"), p.Check(context.Background()).Details)

	_, ok = reg.Lookup("question")
	assert.False(t, ok)
}

func TestRegistryAllReturnsCopy(t *testing.T) {
	reg, err := NewRegistryFrom(constant("a", true), constant("b", true))
	require.NoError(t, err)

	all := reg.All()
	all[0] = constant("z", true)

	assert.Equal(t, []string{"a", "b"}, reg.Names())
}
