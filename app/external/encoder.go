package external

import (
	"context"
	"fmt"
	"strings"
)

// Encoder invokes the external mnemonic encoder: the command gets the hex
// digest as its single trailing argument and prints whitespace-delimited
// words. Non-zero exit or empty output is a hard failure.
type Encoder struct {
	Command   string
	Commander Commander
}

// Encode hands the digest to the encoder command and returns its words.
func (e Encoder) Encode(ctx context.Context, hexDigest string) ([]string, error) {
	out, err := e.Commander.Run(ctx, "", e.Command, hexDigest)
	if err != nil {
		return nil, err
	}
	words := strings.Fields(out)
	if len(words) == 0 {
		return nil, fmt.Errorf("%s produced no words", e.Command)
	}
	return words, nil
}
