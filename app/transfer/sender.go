package transfer

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/go-pkgz/lgr"
)

// Sender pushes N items to a peer enumerating the same codes. State machine:
// announce count, then per item metadata followed by content, strictly in
// order - item i completes before item i+1's codes are even generated.
type Sender struct {
	Coder Coder
	Tool  Tool
	Rec   Recorder
}

// Run sends all paths. The base code is assumed boundary-checked by the
// caller; per-item codes are not re-checked, items already in flight are
// not interrupted by a window change.
func (s Sender) Run(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("nothing to send")
	}

	items, err := enumerate(paths)
	if err != nil {
		return err
	}

	baseCode, err := s.Coder.Generate(ctx, "")
	if err != nil {
		return err
	}
	payload, err := marshalMsg(countMsg{Total: len(items)})
	if err != nil {
		return err
	}
	if err := s.Tool.SendText(ctx, baseCode, payload); err != nil {
		return fmt.Errorf("announce count: %w", err)
	}
	log.Printf("[INFO] announced %d items", len(items))

	for i, item := range items {
		if err := s.sendItem(ctx, item, i+1, len(items)); err != nil {
			return err
		}
	}
	log.Printf("[INFO] all %d items sent", len(items))
	return nil
}

func (s Sender) sendItem(ctx context.Context, item Item, index, total int) error {
	metaCode, err := s.Coder.Generate(ctx, "meta"+strconv.Itoa(index))
	if err != nil {
		return err
	}
	payload, err := marshalMsg(metaMsg{Filename: item.Name, Hash: item.Hash, Index: index, Total: total})
	if err != nil {
		return err
	}
	if err := s.Tool.SendText(ctx, metaCode, payload); err != nil {
		return fmt.Errorf("send metadata %d/%d: %w", index, total, err)
	}

	dataCode, err := s.Coder.Generate(ctx, "data"+strconv.Itoa(index))
	if err != nil {
		return err
	}
	if err := s.Tool.SendPath(ctx, dataCode, item.Path); err != nil {
		return fmt.Errorf("send item %d/%d (%s): %w", index, total, item.Name, err)
	}

	s.Rec.Item(index, item.Name, item.Kind(), item.Hash, "sent")
	log.Printf("[INFO] sent %d/%d %q", index, total, item.Name)
	return nil
}
