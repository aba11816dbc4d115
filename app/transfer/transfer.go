// Package transfer drives a complete send or receive run: items are
// exchanged strictly in order, one code per exchange, with the codes derived
// independently by both sides. Nothing here retries - every failure stops
// the run with a distinguishable error and the operator re-runs from scratch
// with a fresh time base.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codedrop/codedrop/app/digest"
)

//go:generate moq -out coder_mock.go -fmt goimports . Coder
//go:generate moq -out tool_mock.go -fmt goimports . Tool
//go:generate moq -out recorder_mock.go -fmt goimports . Recorder

// Errors of the run, matched with errors.Is by the caller to pick exit codes.
var (
	// ErrProtocol marks desynchronization between the two sides: wrong
	// index or total, malformed metadata. Usually a different secret,
	// modulo or window on the peer.
	ErrProtocol = errors.New("protocol violation")

	// ErrIntegrity marks a received file whose content does not match the
	// declared digest. The artifact is removed before the error surfaces.
	ErrIntegrity = errors.New("integrity check failed")
)

// Coder derives the per-suffix transfer codes of a run. Implemented by
// code.Generator.
type Coder interface {
	Generate(ctx context.Context, suffix string) (string, error)
}

// Tool is the external transfer tool contract, one blocking invocation per
// call. Implemented by external.Tool. RecvPath delivers under an explicit
// name and is valid only when CanTarget; RecvPathTo delivers into a
// directory under the name the sender offered.
type Tool interface {
	SendText(ctx context.Context, code, payload string) error
	SendPath(ctx context.Context, code, path string) error
	RecvText(ctx context.Context, code string) (string, error)
	RecvPath(ctx context.Context, code, dest string) error
	RecvPathTo(ctx context.Context, code, dir string) error
	CanTarget() bool
}

// Recorder persists per-item run progress. Implementations are best-effort:
// they log their own failures and never fail the run.
type Recorder interface {
	Item(index int, name, kind, hash, status string)
}

// Item is one file or directory moving through a run.
type Item struct {
	Path string // sender: source path, receiver: delivery path
	Name string
	Dir  bool
	Hash string // hex digest, digest.Sentinel for directories
}

// Kind returns the journal kind of the item.
func (i Item) Kind() string {
	if i.Dir {
		return "dir"
	}
	return "file"
}

// enumerate resolves operator-supplied paths into items, hashing file
// content up front so metadata can declare it before any transfer starts.
func enumerate(paths []string) ([]Item, error) {
	items := make([]Item, 0, len(paths))
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		item := Item{Path: p, Name: filepath.Base(p), Dir: fi.IsDir(), Hash: digest.Sentinel}
		if !fi.IsDir() {
			if item.Hash, err = digest.File(p); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return items, nil
}
