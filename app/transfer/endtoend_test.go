package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codedrop/codedrop/app/code"
	"github.com/codedrop/codedrop/app/digest"
)

// wireEncoder derives three words from the digest, standing in for the
// external word-list encoder. Deterministic, so both sides agree.
type wireEncoder struct{}

func (wireEncoder) Encode(_ context.Context, hexDigest string) ([]string, error) {
	return []string{hexDigest[:6], hexDigest[6:12], hexDigest[12:18]}, nil
}

// wire is an in-memory stand-in for the transfer tool's rendezvous: content
// published under a code is retrievable under exactly that code, nothing
// else.
type wire struct {
	texts map[string]string
	files map[string]wireFile
}

type wireFile struct {
	name    string
	content []byte
}

func newWire() *wire {
	return &wire{texts: map[string]string{}, files: map[string]wireFile{}}
}

// wireTool adapts one side of the wire to the Tool contract.
type wireTool struct{ w *wire }

func (t wireTool) SendText(_ context.Context, code, payload string) error {
	t.w.texts[code] = payload
	return nil
}

func (t wireTool) SendPath(_ context.Context, code, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	t.w.files[code] = wireFile{name: filepath.Base(path), content: content}
	return nil
}

func (t wireTool) RecvText(_ context.Context, code string) (string, error) {
	payload, ok := t.w.texts[code]
	if !ok {
		return "", fmt.Errorf("no peer on code %s: exit status 1", code)
	}
	return payload, nil
}

func (t wireTool) RecvPath(context.Context, string, string) error {
	return errors.New("output targeting not supported")
}

func (t wireTool) RecvPathTo(_ context.Context, code, dir string) error {
	f, ok := t.w.files[code]
	if !ok {
		return fmt.Errorf("no peer on code %s: exit status 1", code)
	}
	return os.WriteFile(filepath.Join(dir, f.name), f.content, 0o600)
}

func (t wireTool) CanTarget() bool { return false }

func TestRendezvous_SameWindow(t *testing.T) {
	// sender and receiver derive their codes independently, 23 seconds
	// apart within one 60s window, and meet on every exchange
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	content := []byte("annual report")
	src := filepath.Join(srcDir, "report.pdf")
	require.NoError(t, os.WriteFile(src, content, 0o600))

	w := newWire()
	senderGen := code.Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000052, Encoder: wireEncoder{}}
	receiverGen := code.Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000075, Encoder: wireEncoder{}}

	s := Sender{Coder: senderGen, Tool: wireTool{w}, Rec: nopRecorder()}
	require.NoError(t, s.Run(context.Background(), []string{src}))

	rec := nopRecorder()
	r := Receiver{Coder: receiverGen, Tool: wireTool{w}, Rec: rec, Dir: dstDir}
	require.NoError(t, r.Run(context.Background()))

	got, err := os.ReadFile(filepath.Join(dstDir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, got)

	items := rec.ItemCalls()
	require.Len(t, items, 1)
	assert.Equal(t, "verified", items[0].Status)
	assert.Equal(t, digest.Hex(content), items[0].Hash)
}

func TestRendezvous_WindowApart(t *testing.T) {
	// receiver starts 61 seconds after the sender with modulo 60: one
	// window step later, its codes diverge and no exchange ever matches -
	// the run fails as a tool failure, never a false success
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "report.pdf")
	require.NoError(t, os.WriteFile(src, []byte("annual report"), 0o600))

	w := newWire()
	senderGen := code.Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000052, Encoder: wireEncoder{}}
	receiverGen := code.Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000052 + 61, Encoder: wireEncoder{}}

	s := Sender{Coder: senderGen, Tool: wireTool{w}, Rec: nopRecorder()}
	require.NoError(t, s.Run(context.Background(), []string{src}))

	r := Receiver{Coder: receiverGen, Tool: wireTool{w}, Rec: nopRecorder(), Dir: t.TempDir()}
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProtocol)
	assert.NotErrorIs(t, err, ErrIntegrity)
	assert.Contains(t, err.Error(), "receive count")
}
