package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_LoadsAndCaches(t *testing.T) {
	for _, name := range []string{IconFocus, IconBreak, IconPaused} {
		first, err := Icon(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, first.Name())
		assert.Contains(t, string(first.Content()), "<svg")

		second := MustIcon(name)
		assert.Same(t, first, second)
	}
}

func TestIcon_Missing(t *testing.T) {
	_, err := Icon("nope.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("nope.svg") })
}
