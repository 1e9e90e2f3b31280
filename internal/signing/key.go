package signing

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
)

// SeedSize is the length of a raw Ed25519 private key seed.
const SeedSize = ed25519.SeedSize

var (
	// ErrKeyNotFound indicates the key file does not exist or is not a regular file.
	ErrKeyNotFound = errors.New("private key file not found")
	// ErrKeyDecode indicates the key file content is not valid base64.
	ErrKeyDecode = errors.New("failed to decode private key")
	// ErrSeedLength indicates the decoded seed is not exactly SeedSize bytes.
	ErrSeedLength = errors.New("invalid key seed length")
)

// CheckKeyFile verifies that path points at a regular file.
func CheckKeyFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, path)
	}
	return nil
}

// LoadSeed reads a base64-encoded 32-byte Ed25519 seed from path and derives
// the private key from it. The file contains a single base64 string;
// surrounding whitespace is ignored.
func LoadSeed(path string) (ed25519.PrivateKey, error) {
	if err := CheckKeyFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}

	seed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDecode, err)
	}

	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: %d (expected %d bytes)", ErrSeedLength, len(seed), SeedSize)
	}

	// NewKeyFromSeed only rejects wrong-length seeds, which the check above rules out.
	return ed25519.NewKeyFromSeed(seed), nil
}
