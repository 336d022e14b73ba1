package output

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/arthur-debert/savesync/pkg/logging"
	"github.com/arthur-debert/savesync/pkg/types"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/rs/zerolog"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer writes styled command results to a writer
type Renderer struct {
	templates *template.Template
	writer    io.Writer
	noColor   bool
	logger    zerolog.Logger
}

// TrackCounts tallies track results by status
type TrackCounts struct {
	Success        int
	AlreadyTracked int
	Skipped        int
	Failed         int
}

// trackView is the data handed to track.tmpl
type trackView struct {
	Results []types.TrackResult
	Counts  TrackCounts
}

var funcs = template.FuncMap{
	"short":      shortHash,
	"branch":     func(name string) string { return plumbing.ReferenceName(name).Short() },
	"trackStyle": trackStyle,
	"trackLabel": trackLabel,
	"stateStyle": stateStyle,
	"stateLabel": stateLabel,
}

// NewRenderer creates a Renderer. With noColor set all style tags are
// stripped instead of rendered.
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	tmpl, err := template.New("output").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	logger := logging.GetLogger("output")
	logger.Debug().Bool("noColor", noColor).Msg("Renderer created")

	return &Renderer{
		templates: tmpl,
		writer:    w,
		noColor:   noColor,
		logger:    logger,
	}, nil
}

// CountTrack tallies results by status
func CountTrack(results []types.TrackResult) TrackCounts {
	var c TrackCounts
	for _, r := range results {
		switch r.Status {
		case types.TrackSuccess:
			c.Success++
		case types.TrackAlreadyTracked:
			c.AlreadyTracked++
		case types.TrackSkipped:
			c.Skipped++
		case types.TrackFailed:
			c.Failed++
		}
	}
	return c
}

// RenderTrack prints one line per track result and a summary
func (r *Renderer) RenderTrack(results []types.TrackResult) error {
	return r.execute("track.tmpl", trackView{Results: results, Counts: CountTrack(results)})
}

// RenderList prints the configured games
func (r *Renderer) RenderList(entries []types.GameEntry) error {
	return r.execute("list.tmpl", entries)
}

// RenderStatus prints the inspected state of each game
func (r *Renderer) RenderStatus(statuses []types.EntryStatus) error {
	return r.execute("status.tmpl", statuses)
}

// RenderPull prints what a pull changed
func (r *Renderer) RenderPull(result *types.PullResult) error {
	return r.execute("pull.tmpl", result)
}

// RenderError renders an error message with appropriate styling
func (r *Renderer) RenderError(err error) error {
	return r.write("<Error>Error:</Error> " + err.Error())
}

// RenderMessage renders a single line in the named style
func (r *Renderer) RenderMessage(style, message string) error {
	return r.write(fmt.Sprintf("<%s>%s</%s>", style, message, style))
}

func (r *Renderer) execute(name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	r.logger.Trace().Str("template", name).Str("output", buf.String()).Msg("Template executed")
	return r.write(strings.Trim(buf.String(), "\n"))
}

func (r *Renderer) write(marked string) error {
	_, err := fmt.Fprintln(r.writer, ExpandTags(marked, r.noColor))
	return err
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func trackStyle(s types.TrackStatus) string {
	switch s {
	case types.TrackSuccess:
		return "Success"
	case types.TrackAlreadyTracked:
		return "Info"
	case types.TrackSkipped:
		return "Warning"
	default:
		return "Error"
	}
}

func trackLabel(s types.TrackStatus) string {
	switch s {
	case types.TrackSuccess:
		return "tracked"
	case types.TrackAlreadyTracked:
		return "already tracked"
	case types.TrackSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

func stateStyle(s types.EntryState) string {
	switch s {
	case types.StateTracked:
		return "Success"
	case types.StateUntracked, types.StateLinkMissing:
		return "Warning"
	case types.StateConflict, types.StateForeignLink:
		return "Error"
	default:
		return "Muted"
	}
}

func stateLabel(s types.EntryState) string {
	switch s {
	case types.StateLinkMissing:
		return "link missing"
	case types.StateForeignLink:
		return "foreign link"
	default:
		return string(s)
	}
}
