package external

import (
	"context"
	"strings"
)

// Tool drives the external transfer tool. Each method is one blocking
// invocation of the configured command; a code is consumed by exactly one
// invocation.
type Tool struct {
	Command    string    // e.g. "wormhole"
	SendArgs   []string  // extra args for every send invocation
	RecvArgs   []string  // extra args for every receive invocation
	OutputFlag string    // receive-to-name flag, empty when the tool has none
	Commander  Commander // usually Runner
}

// SendText publishes a short text payload under the code.
func (t Tool) SendText(ctx context.Context, code, payload string) error {
	args := append([]string{"send"}, t.SendArgs...)
	args = append(args, "--code", code, "--text", payload)
	_, err := t.Commander.Run(ctx, "", t.Command, args...)
	return err
}

// SendPath publishes file or directory content under the code.
func (t Tool) SendPath(ctx context.Context, code, path string) error {
	args := append([]string{"send"}, t.SendArgs...)
	args = append(args, "--code", code, path)
	_, err := t.Commander.Run(ctx, "", t.Command, args...)
	return err
}

// RecvText fetches a text payload published under the code.
func (t Tool) RecvText(ctx context.Context, code string) (string, error) {
	args := append([]string{"receive"}, t.RecvArgs...)
	args = append(args, code)
	out, err := t.Commander.Run(ctx, "", t.Command, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CanTarget reports whether receive can deliver under an explicit name.
func (t Tool) CanTarget() bool { return t.OutputFlag != "" }

// RecvPath fetches content published under the code and delivers it under
// dest. Valid only for tools with an output flag, see CanTarget.
func (t Tool) RecvPath(ctx context.Context, code, dest string) error {
	args := append([]string{"receive"}, t.RecvArgs...)
	args = append(args, t.OutputFlag, dest, code)
	_, err := t.Commander.Run(ctx, "", t.Command, args...)
	return err
}

// RecvPathTo fetches content published under the code into dir, under
// whatever name the sender offered.
func (t Tool) RecvPathTo(ctx context.Context, code, dir string) error {
	args := append([]string{"receive"}, t.RecvArgs...)
	args = append(args, code)
	_, err := t.Commander.Run(ctx, dir, t.Command, args...)
	return err
}
