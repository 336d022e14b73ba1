package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTags_Plain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no_tags", "plain text", "plain text"},
		{"single", "<Success>ok</Success>", "ok"},
		{"several", "<Game>Foo</Game> at <Path>~/foo</Path>", "Foo at ~/foo"},
		{"unclosed_kept", "<Game>Foo", "<Game>Foo"},
		{"arrow_untouched", "<Path>a</Path> -> <Path>b</Path>", "a -> b"},
		{"lowercase_ignored", "<b>x</b>", "<b>x</b>"},
		{"multiline", "<Error>line one\nline two</Error>", "line one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTags(tt.input, true))
		})
	}
}

func TestExpandTags_StyledKeepsText(t *testing.T) {
	out := ExpandTags("<Success>done</Success>", false)
	assert.Contains(t, out, "done")
	assert.NotContains(t, out, "<Success>")
}
