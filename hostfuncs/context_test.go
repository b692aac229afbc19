package hostfuncs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/q3ui/uibridge/domain/entities"
)

func TestNewHostContext(t *testing.T) {
	hc := NewHostContext(context.Background(), entities.ImportCvarSet)
	assert.Equal(t, entities.ImportCvarSet, hc.Import())

	_, ok := hc.GetValue("missing")
	assert.False(t, ok)

	hc.SetValue("k", 1)
	v, ok := hc.GetValue("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestHostContextFrom(t *testing.T) {
	hc := NewHostContext(context.Background(), entities.ImportPrint)
	assert.Same(t, hc, HostContextFrom(hc, entities.ImportPrint))

	other := HostContextFrom(hc, entities.ImportError)
	assert.NotSame(t, hc, other)
	assert.Equal(t, entities.ImportError, other.Import())
}

func TestHostContext_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hc := NewHostContext(ctx, entities.ImportPrint)
	cancel()
	assert.ErrorIs(t, hc.Err(), context.Canceled)
}

func TestHostContext_SetValueReplaces(t *testing.T) {
	type key struct{}
	hc := NewHostContext(context.Background(), entities.ImportPrint)
	hc.SetValue(key{}, "first")
	hc.SetValue(key{}, "second")

	v, ok := hc.GetValue(key{})
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestHostContext_Value(t *testing.T) {
	type parentKey struct{}
	type callKey struct{}
	type wrapKey struct{}
	parent := context.WithValue(context.Background(), parentKey{}, "parent")
	hc := NewHostContext(parent, entities.ImportPrint)
	hc.SetValue(callKey{}, "call")

	wrapped := context.WithValue(hc, wrapKey{}, 1)
	assert.Equal(t, "call", wrapped.Value(callKey{}))
	assert.Equal(t, "parent", wrapped.Value(parentKey{}))
	assert.Nil(t, wrapped.Value("missing"))
}
