package styles_test

import (
	"testing"

	"github.com/arthur-debert/savesync/pkg/output/styles"
	"github.com/stretchr/testify/assert"
)

func TestStyleRegistry(t *testing.T) {
	expected := []string{
		"Header", "Bold", "Muted",
		"Success", "Error", "Warning", "Info",
		"Game", "Path", "Hash", "Enabled", "Disabled",
	}

	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "style %s should exist in registry", name)
		})
	}
}

func TestStyleProperties(t *testing.T) {
	assert.True(t, styles.GetStyle("Header").GetBold())
	assert.True(t, styles.GetStyle("Header").GetUnderline())
	assert.True(t, styles.GetStyle("Path").GetItalic())
}

func TestGetStyleUnknownIsPlain(t *testing.T) {
	assert.Equal(t, "text", styles.GetStyle("NoSuchStyle").Render("text"))
}
