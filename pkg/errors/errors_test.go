package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorWrap(t *testing.T) {
	sentinel := New("base condition")
	cause := fmt.Errorf("root cause")

	wrapped := sentinel.Wrap(cause)
	require.True(t, Is(wrapped, sentinel))
	require.True(t, Is(wrapped, cause))
	require.EqualError(t, wrapped, "base condition: root cause")

	// wrapping must not mutate the sentinel
	require.NoError(t, sentinel.Unwrap())
}

func TestErrorWrapMessage(t *testing.T) {
	sentinel := New("base condition")
	wrapped := sentinel.WrapMessage("detail %d", 42)
	require.True(t, Is(wrapped, sentinel))
	require.EqualError(t, wrapped, "base condition: detail 42")
}

func TestErrorRewrap(t *testing.T) {
	sentinel := New("base condition")
	twice := sentinel.Wrap(fmt.Errorf("first")).Wrap(fmt.Errorf("second"))
	require.True(t, Is(twice, sentinel))
}

func TestErrorChild(t *testing.T) {
	parent := New("broad condition")
	child := NewChild(parent, "narrow condition")

	require.True(t, Is(child, parent))
	require.True(t, Is(child, child))
	require.False(t, Is(parent, child))

	wrapped := child.WrapMessage("detail %d", 7)
	require.True(t, Is(wrapped, child))
	require.True(t, Is(wrapped, parent))
	require.EqualError(t, wrapped, "narrow condition: detail 7")

	grandchild := NewChild(child, "narrowest condition")
	require.True(t, Is(grandchild.Wrap(fmt.Errorf("cause")), parent))
}

func TestAs(t *testing.T) {
	sentinel := New("base condition")
	var target *Error
	require.True(t, As(sentinel.Wrap(fmt.Errorf("cause")), &target))
	require.Equal(t, "base condition: cause", target.Error())
}
