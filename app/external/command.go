// Package external invokes the collaborators codedrop delegates to: the
// peer-to-peer transfer tool and the mnemonic encoder. Commands always run
// with explicit argument lists, never through a shell, and the shared secret
// never appears on an argv.
package external

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
)

// Commander runs one external command to completion in the given working
// directory ("" for process cwd). Exit status is the sole success signal;
// captured stdout carries text responses.
type Commander interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, err error)
}

// Runner executes commands with a per-invocation wall-clock timeout.
// A timed-out invocation is killed and reported as a failure.
type Runner struct {
	Timeout time.Duration
}

// Run invokes name with args and returns captured stdout. Stderr passes
// through so interactive tools can show their progress.
func (r Runner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	log.Printf("[DEBUG] run %s %s", name, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s timed out after %s", name, r.Timeout)
		}
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return out.String(), nil
}
