package gitsync

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/savesync/pkg/logging"
	"github.com/rs/zerolog"
)

// gitCLI runs the git binary inside one repository
type gitCLI struct {
	bin    string
	dir    string
	env    []string
	logger zerolog.Logger
}

// run executes git and returns trimmed combined output
func (g *gitCLI) run(args ...string) (string, error) {
	logging.LogCommand(g.logger, g.bin, args)

	cmd := exec.Command(g.bin, args...)
	cmd.Dir = g.dir
	cmd.Env = append(os.Environ(), g.env...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := strings.TrimSpace(out.String())
	if err != nil {
		if output == "" {
			return output, fmt.Errorf("git %s: %w", args[0], err)
		}
		return output, fmt.Errorf("git %s: %w: %s", args[0], err, output)
	}
	return output, nil
}

// quiet runs a git command that signals "differences" with exit status 1,
// such as diff --quiet. It reports true when the command found nothing.
func (g *gitCLI) quiet(args ...string) (bool, error) {
	_, err := g.run(args...)
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, err
}
