package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/go-pkgz/lgr"

	"github.com/codedrop/codedrop/app/digest"
)

// Receiver mirrors the sender state machine: count, then per item metadata,
// content and verification, strictly in order. Received files land in Dir;
// the external tool runs with the same working directory so its default
// placement agrees with ours.
type Receiver struct {
	Coder Coder
	Tool  Tool
	Rec   Recorder
	Dir   string // destination directory, default "."
}

// Run receives a complete run announced by a peer within the same window.
func (r Receiver) Run(ctx context.Context) error {
	baseCode, err := r.Coder.Generate(ctx, "")
	if err != nil {
		return err
	}
	payload, err := r.Tool.RecvText(ctx, baseCode)
	if err != nil {
		return fmt.Errorf("receive count: %w", err)
	}
	var count countMsg
	if err := decodeStrict(payload, &count); err != nil {
		return err
	}
	if count.Total < 0 {
		return fmt.Errorf("%w: negative total %d", ErrProtocol, count.Total)
	}
	log.Printf("[INFO] expecting %d items", count.Total)

	for index := 1; index <= count.Total; index++ {
		if err := r.receiveItem(ctx, index, count.Total); err != nil {
			return err
		}
	}
	log.Printf("[INFO] all %d items received", count.Total)
	return nil
}

func (r Receiver) receiveItem(ctx context.Context, index, total int) error {
	metaCode, err := r.Coder.Generate(ctx, "meta"+strconv.Itoa(index))
	if err != nil {
		return err
	}
	payload, err := r.Tool.RecvText(ctx, metaCode)
	if err != nil {
		return fmt.Errorf("receive metadata %d/%d: %w", index, total, err)
	}
	var meta metaMsg
	if err := decodeStrict(payload, &meta); err != nil {
		return err
	}
	if err := meta.validate(index, total); err != nil {
		return err
	}

	name := disambiguate(r.dir(), meta.Filename)
	if name != meta.Filename {
		log.Printf("[WARN] %q already exists, receiving as %q", meta.Filename, name)
	}

	dataCode, err := r.Coder.Generate(ctx, "data"+strconv.Itoa(index))
	if err != nil {
		return err
	}
	final := filepath.Join(r.dir(), name)
	if err := r.receiveContent(ctx, dataCode, meta.Filename, name, final); err != nil {
		return fmt.Errorf("receive item %d/%d (%s): %w", index, total, meta.Filename, err)
	}

	status, err := r.verify(meta, name, final)
	if err != nil {
		return err
	}
	r.Rec.Item(index, name, kindOf(meta.Hash), meta.Hash, status)
	log.Printf("[INFO] received %d/%d %q", index, total, name)
	return nil
}

// receiveContent fetches the item, delivering it under name. When the tool
// cannot target an alternative name, content lands under the offered name in
// a staging directory and is renamed into place afterward - the colliding
// pre-existing entry is never touched.
func (r Receiver) receiveContent(ctx context.Context, code, offered, name, final string) error {
	if name == offered {
		return r.Tool.RecvPathTo(ctx, code, r.dir())
	}
	if r.Tool.CanTarget() {
		return r.Tool.RecvPath(ctx, code, final)
	}

	stage, err := os.MkdirTemp(r.dir(), ".codedrop-")
	if err != nil {
		return fmt.Errorf("make staging dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(stage); err != nil {
			log.Printf("[WARN] failed to clean staging dir %s: %v", stage, err)
		}
	}()

	if err := r.Tool.RecvPathTo(ctx, code, stage); err != nil {
		return err
	}
	if err := os.Rename(filepath.Join(stage, offered), final); err != nil {
		return fmt.Errorf("rename to %s: %w", name, err)
	}
	return nil
}

// verify closes the loop for an item. Files: recompute the digest and
// compare; a mismatch deletes the artifact so a failed transfer never leaves
// trusted-looking but wrong content behind. Directories: existence check
// only, their content carries no digest.
func (r Receiver) verify(meta metaMsg, name, final string) (status string, err error) {
	if meta.Hash == digest.Sentinel {
		if _, err := os.Stat(final); err != nil {
			return "", fmt.Errorf("directory %s not delivered: %w", name, err)
		}
		return "received", nil
	}

	got, err := digest.File(final)
	if err != nil {
		return "", fmt.Errorf("verify %s: %w", name, err)
	}
	if got != meta.Hash {
		if rmErr := os.Remove(final); rmErr != nil {
			log.Printf("[WARN] failed to remove corrupted %s: %v", final, rmErr)
		}
		return "", fmt.Errorf("%w: %s digest mismatch, got %s, declared %s", ErrIntegrity, name, got, meta.Hash)
	}
	return "verified", nil
}

func (r Receiver) dir() string {
	if r.Dir == "" {
		return "."
	}
	return r.Dir
}

func kindOf(hash string) string {
	if hash == digest.Sentinel {
		return "dir"
	}
	return "file"
}
