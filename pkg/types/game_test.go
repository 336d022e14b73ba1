package types_test

import (
	"testing"

	"github.com/arthur-debert/savesync/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestGameEntry_Label(t *testing.T) {
	assert.Equal(t, "Hades", types.GameEntry{Key: "hades", Name: "Hades"}.Label())
	assert.Equal(t, "hades", types.GameEntry{Key: "hades"}.Label())
}
