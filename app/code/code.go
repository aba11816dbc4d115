// Package code derives deterministic transfer codes from a shared secret, a
// rotation window and a per-item suffix. Two participants holding the same
// secret and modulo, started within the same window, enumerate identical
// codes without talking to each other - the whole synchronization guarantee
// of the system rests on this purity.
package code

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/codedrop/codedrop/app/digest"
	"github.com/codedrop/codedrop/app/rotation"
)

//go:generate moq -out encoder_mock.go -fmt goimports . Encoder

// Encoder turns a hex digest into a deterministic word sequence. Implemented
// by the external mnemonic encoder; same input must produce same output.
type Encoder interface {
	Encode(ctx context.Context, hexDigest string) ([]string, error)
}

// ErrEncoder marks mnemonic pipeline failures. Kept distinguishable from
// rotation.BoundaryError so callers can tell "encoder unavailable, fix
// environment" apart from "too close to boundary, retry shortly".
var ErrEncoder = errors.New("mnemonic encoder failed")

// prefixModulo is the canonical modulus for the numeric code prefix.
// Earlier protocol revisions used 173; codes are not compatible across
// the two moduli, do not mix.
const prefixModulo = 999

const prefixDigits = 5

// Generator produces the codes of one run. All fields are fixed for the
// run; Generate is a pure function of them plus the suffix, safe to call
// concurrently.
type Generator struct {
	Secret  string
	Modulo  int64
	Base    int64
	Encoder Encoder
}

// Generate returns the code for a suffix: "<prefix>-<word>-<word>-...".
// The empty suffix yields the base code of the run.
func (g Generator) Generate(ctx context.Context, suffix string) (string, error) {
	window := rotation.Window(g.Base, g.Modulo)
	periodKey := strconv.FormatInt(window, 10) + g.Secret + suffix

	words, err := g.Encoder.Encode(ctx, digest.Hex([]byte(periodKey)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoder, err)
	}
	if len(words) == 0 {
		return "", fmt.Errorf("%w: empty word list", ErrEncoder)
	}

	mnemonic := strings.Join(words, "-")
	return fmt.Sprintf("%d-%s", prefix(digest.Hex([]byte(mnemonic))), mnemonic), nil
}

// prefix collects the first prefixDigits decimal digits of the hex digest in
// order and folds them into the canonical modulus. A digest with fewer
// digits is right-padded with zeros; all-letters digests are possible in
// theory and map to 0.
func prefix(hexDigest string) int {
	var b strings.Builder
	for _, r := range hexDigest {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == prefixDigits {
				break
			}
		}
	}
	padded := b.String() + strings.Repeat("0", prefixDigits-b.Len())
	n, _ := strconv.Atoi(padded)
	return n % prefixModulo
}
