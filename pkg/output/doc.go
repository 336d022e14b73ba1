// Package output renders command results for the terminal.
//
// Each result type has a text/template in templates/. Templates mark text
// with style tags named after entries in the styles registry; the renderer
// expands those tags into lipgloss styling, or strips them when color is
// off (NO_COLOR, a pipe, or an ASCII-only terminal).
package output
