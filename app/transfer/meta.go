package transfer

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// countMsg announces how many items the sender will push. First message of
// every run, sent under the base code.
type countMsg struct {
	Total int `json:"total"`
}

// metaMsg describes one item before its content is sent.
type metaMsg struct {
	Filename string `json:"filename"`
	Hash     string `json:"hash"` // hex digest or digest.Sentinel
	Index    int    `json:"index"`
	Total    int    `json:"total"`
}

// validate checks the declared fields against the receiver's running state.
// Any mismatch means the two sides are desynchronized and must not be
// guessed around.
func (m metaMsg) validate(index, total int) error {
	if m.Filename == "" || m.Filename == "." || m.Filename == ".." || m.Filename != filepath.Base(m.Filename) {
		return fmt.Errorf("%w: bad filename %q", ErrProtocol, m.Filename)
	}
	if m.Index != index {
		return fmt.Errorf("%w: got index %d, expected %d", ErrProtocol, m.Index, index)
	}
	if m.Total != total {
		return fmt.Errorf("%w: declared total %d, announced %d", ErrProtocol, m.Total, total)
	}
	return nil
}

func marshalMsg(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal message: %w", err)
	}
	return string(data), nil
}

// decodeStrict parses a wire payload, rejecting unknown fields and trailing
// data. Malformed payloads are protocol violations, never repaired.
func decodeStrict(payload string, v any) error {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed message: %v", ErrProtocol, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data in message", ErrProtocol)
	}
	return nil
}
