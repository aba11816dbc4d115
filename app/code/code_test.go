package code

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codedrop/codedrop/app/digest"
)

// digestEncoder derives three words from the digest itself, the way a real
// word-list encoder does deterministically.
func digestEncoder() *EncoderMock {
	return &EncoderMock{
		EncodeFunc: func(_ context.Context, hexDigest string) ([]string, error) {
			return []string{hexDigest[:6], hexDigest[6:12], hexDigest[12:18]}, nil
		},
	}
}

func TestGenerator_Pure(t *testing.T) {
	g := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000042, Encoder: digestEncoder()}

	c1, err := g.Generate(context.Background(), "meta1")
	require.NoError(t, err)
	c2, err := g.Generate(context.Background(), "meta1")
	require.NoError(t, err)
	assert.Equal(t, c1, c2, "same inputs, same code")
}

func TestGenerator_Format(t *testing.T) {
	g := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000042, Encoder: digestEncoder()}

	c, err := g.Generate(context.Background(), "")
	require.NoError(t, err)

	parts := strings.SplitN(c, "-", 2)
	require.Len(t, parts, 2)
	assert.Regexp(t, `^\d{1,3}$`, parts[0], "prefix is a small number")
	assert.Equal(t, 2, strings.Count(parts[1], "-"), "three words joined with dashes")
}

func TestGenerator_SuffixChangesCode(t *testing.T) {
	g := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000042, Encoder: digestEncoder()}

	seen := map[string]string{}
	for _, suffix := range []string{"", "meta1", "data1", "meta2", "data2"} {
		c, err := g.Generate(context.Background(), suffix)
		require.NoError(t, err)
		for other, prev := range seen {
			assert.NotEqual(t, prev, c, "suffix %q vs %q", suffix, other)
		}
		seen[suffix] = c
	}
}

func TestGenerator_SecretChangesCode(t *testing.T) {
	g1 := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000042, Encoder: digestEncoder()}
	g2 := Generator{Secret: "other", Modulo: 60, Base: 1700000042, Encoder: digestEncoder()}

	c1, err := g1.Generate(context.Background(), "meta1")
	require.NoError(t, err)
	c2, err := g2.Generate(context.Background(), "meta1")
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
}

func TestGenerator_SameWindowSameCode(t *testing.T) {
	// two participants starting 20s apart within one 60s window derive the
	// same code; one window step apart they diverge
	sender := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000042, Encoder: digestEncoder()}
	receiver := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000062, Encoder: digestEncoder()}
	late := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000042 + 61, Encoder: digestEncoder()}

	for _, suffix := range []string{"", "meta1", "data1"} {
		cs, err := sender.Generate(context.Background(), suffix)
		require.NoError(t, err)
		cr, err := receiver.Generate(context.Background(), suffix)
		require.NoError(t, err)
		cl, err := late.Generate(context.Background(), suffix)
		require.NoError(t, err)

		assert.Equal(t, cs, cr, "suffix %q, same window", suffix)
		assert.NotEqual(t, cs, cl, "suffix %q, next window", suffix)
	}
}

func TestGenerator_EncoderGetsPeriodKeyDigest(t *testing.T) {
	enc := digestEncoder()
	g := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000042, Encoder: enc}

	_, err := g.Generate(context.Background(), "data7")
	require.NoError(t, err)

	require.Len(t, enc.EncodeCalls(), 1)
	// window of 1700000042 with modulo 60 is 1700000040
	want := digest.Hex([]byte("1700000040" + "s3cr3t" + "data7"))
	assert.Equal(t, want, enc.EncodeCalls()[0].HexDigest)
}

func TestGenerator_EncoderErrors(t *testing.T) {
	tbl := []struct {
		name string
		enc  *EncoderMock
	}{
		{"encoder failure", &EncoderMock{EncodeFunc: func(context.Context, string) ([]string, error) {
			return nil, fmt.Errorf("exec: not found")
		}}},
		{"empty word list", &EncoderMock{EncodeFunc: func(context.Context, string) ([]string, error) {
			return []string{}, nil
		}}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			g := Generator{Secret: "s3cr3t", Modulo: 60, Base: 1700000042, Encoder: tt.enc}
			_, err := g.Generate(context.Background(), "")
			assert.True(t, errors.Is(err, ErrEncoder), "got %v", err)
		})
	}
}

func TestPrefix(t *testing.T) {
	tbl := []struct {
		digest string
		want   int
	}{
		{"1a2b3c4d5e6f7890", 12345 % 999},     // first five digits 1,2,3,4,5
		{"abcdef", 0},                         // no digits at all, padded to 00000
		{"a1b", 10000 % 999},                  // one digit, right-padded with zeros
		{"99999fffffffffffffff", 99999 % 999}, // digits exhausted early
		{"00000abc", 0},
	}
	for i, tt := range tbl {
		assert.Equal(t, tt.want, prefix(tt.digest), "case %d", i)
	}
}

func TestPrefix_Range(t *testing.T) {
	for i := 0; i < 50; i++ {
		p := prefix(digest.Hex([]byte{byte(i)}))
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 999)
	}
}
