package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	t.Run("unknown_color", func(t *testing.T) {
		err := LoadStylesFromData([]byte("styles:\n  Odd:\n    foreground: purple\n"))
		assert.ErrorContains(t, err, "purple")
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		assert.Error(t, LoadStylesFromData([]byte("styles: [")))
	})

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, LoadStylesFromData([]byte("styles:\n  Only:\n    bold: true\n")))
		assert.Len(t, StyleRegistry, 1)
		assert.True(t, GetStyle("Only").GetBold())
	})
}
