package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hawk-session-service/pkg/lazy"
)

func TestLoader_LoadsOnce(t *testing.T) {
	var calls int
	l := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	var called bool
	l.IfLoaded(func(int) { called = true })
	assert.False(t, called)

	assert.Equal(t, 42, l.MustLoad())
	assert.Equal(t, 42, l.MustLoad())
	assert.Equal(t, 1, calls)

	l.IfLoaded(func(v int) { called = v == 42 })
	assert.True(t, called)
}

func TestLoader_ReturnsProviderError(t *testing.T) {
	l := lazy.New(func() (string, error) {
		return "", errors.New("unexpected")
	})

	_, err := l.Load()
	require.Error(t, err)
	assert.Panics(t, func() { l.MustLoad() })
}
