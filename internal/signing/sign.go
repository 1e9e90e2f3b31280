package signing

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
)

// Sign signs data with the private key and returns the raw 64-byte signature.
// Ed25519 is deterministic: the same key and data always produce the same
// signature.
func Sign(privateKey ed25519.PrivateKey, data []byte) ([]byte, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid private key size: expected %d bytes, got %d", ed25519.PrivateKeySize, len(privateKey))
	}

	signature := ed25519.Sign(privateKey, data)
	if len(signature) != ed25519.SignatureSize {
		return nil, fmt.Errorf("unexpected signature size: %d", len(signature))
	}

	return signature, nil
}

// EncodeSignature renders a raw signature as base64 for the appcast.
func EncodeSignature(signature []byte) string {
	return base64.StdEncoding.EncodeToString(signature)
}
