// Package probe answers "is this executable installed, and what version?"
// by running the binary with a short timeout and parsing its output.
package probe

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single probe. Hung binaries are killed and
// reported as not installed.
const DefaultTimeout = 5 * time.Second

// Result is the outcome of probing one command. It is produced fresh per
// probe and never persisted directly.
type Result struct {
	Exists  bool
	Path    string
	Version string
}

// Run probes one named executable. It never returns an error: every failure
// mode (missing binary, permission error, timeout, crash) collapses to
// Result{Exists: false} so probes can run unattended in bulk.
//
// The command is resolved via PATH and spawned directly, without a shell.
// args defaults to ["--version"] when empty.
func Run(ctx context.Context, command string, args []string, timeout time.Duration) Result {
	if strings.TrimSpace(command) == "" {
		return Result{}
	}
	if len(args) == 0 {
		args = []string{"--version"}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	path, err := exec.LookPath(command)
	if err != nil {
		return Result{}
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := runCmd(cctx, path, args...)
	if cctx.Err() != nil {
		// Timed out or canceled; CommandContext already killed the child.
		return Result{}
	}
	trimmed := strings.TrimSpace(out)
	if err != nil && trimmed == "" {
		return Result{}
	}
	return Result{
		Exists:  true,
		Path:    path,
		Version: ParseVersion(trimmed),
	}
}

// runCmd executes a command and returns combined stdout+stderr as a string.
// Stderr matters: several tools (java, python2) print their version there.
func runCmd(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Suppress color and pagers so output stays parseable.
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	return string(out), err
}
