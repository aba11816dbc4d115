// Package digest provides the hashing primitive shared by code generation
// and content verification. All digests are BLAKE2b-256, rendered as
// lowercase hex.
package digest

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// Sentinel marks content with no applicable hash, i.e. directories.
const Sentinel = "n/a"

// Hex returns the digest of data.
func Hex(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// File streams the file at path through the hash and returns its digest.
func File(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("make hasher: %w", err)
	}
	if _, err := io.Copy(h, fh); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
