package digest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	// blake2b-256 of empty input, fixed by the algorithm
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", Hex(nil))
	assert.Equal(t, Hex([]byte("abc")), Hex([]byte("abc")), "must be deterministic")
	assert.NotEqual(t, Hex([]byte("abc")), Hex([]byte("abd")))
	assert.Len(t, Hex([]byte("anything")), 64)
}

func TestFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(fname, []byte("some content"), 0o600))

	h, err := File(fname)
	require.NoError(t, err)
	assert.Equal(t, Hex([]byte("some content")), h, "file digest matches in-memory digest")
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "no-such-file"))
	assert.Error(t, err)
}
