package signing

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"testing"
)

// Vectors generated with the RFC 8032 reference implementation.
const (
	// Seed 0x00..0x1f signing "hello world".
	helloSigB64 = "yeiKBsiIVap1+QvP3FqHt2qZwNIEQRS4kx5yCJ57jHrGtKl3a1cyby14GqjaiCH+a0xylv3gtjyiTX9jQ6xqCg=="

	// RFC 8032 TEST 1 seed signing "hello world".
	rfcSeedB64     = "nWGxne/9WmC6hEr0kuwsxERJxWl7MmkZcDusAxyuf2A="
	rfcHelloSigB64 = "LFSCOSoZfsCfozd3lY06C+T0lgr4XpeWpNgiyV7PcEo0/tMq22maiMDqh2ufuxfR29M291T9kge/wRLImqVPAg=="
)

func keyFromSeedB64(t *testing.T, seedB64 string) ed25519.PrivateKey {
	t.Helper()
	seed, err := base64.StdEncoding.DecodeString(seedB64)
	if err != nil {
		t.Fatalf("failed to decode seed: %v", err)
	}
	return ed25519.NewKeyFromSeed(seed)
}

func TestSignKnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		seedB64 string
		message string
		wantSig string
	}{
		{
			name:    "sequential seed",
			seedB64: testSeedB64,
			message: "hello world",
			wantSig: helloSigB64,
		},
		{
			name:    "rfc 8032 test 1 seed",
			seedB64: rfcSeedB64,
			message: "hello world",
			wantSig: rfcHelloSigB64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			privateKey := keyFromSeedB64(t, tt.seedB64)

			signature, err := Sign(privateKey, []byte(tt.message))
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}
			if got := EncodeSignature(signature); got != tt.wantSig {
				t.Errorf("Sign() = %s, want %s", got, tt.wantSig)
			}
		})
	}
}

func TestSignDeterministic(t *testing.T) {
	privateKey := keyFromSeedB64(t, testSeedB64)
	data := []byte("the same artifact, signed twice")

	first, err := Sign(privateKey, data)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	second, err := Sign(privateKey, data)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("signatures over identical input differ")
	}
}

func TestSignVerifiesWithPublicKey(t *testing.T) {
	privateKey := keyFromSeedB64(t, testSeedB64)
	data := []byte{0x00, 0xff, 0x10, 0x20, 0x7f, 0x80}

	signature, err := Sign(privateKey, data)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if len(signature) != ed25519.SignatureSize {
		t.Fatalf("signature size = %d, want %d", len(signature), ed25519.SignatureSize)
	}

	publicKey := privateKey.Public().(ed25519.PublicKey)
	if !ed25519.Verify(publicKey, data, signature) {
		t.Error("signature does not verify against the derived public key")
	}
	if ed25519.Verify(publicKey, append(data, 0x01), signature) {
		t.Error("signature verifies against tampered data")
	}
}

func TestSignRejectsTruncatedKey(t *testing.T) {
	if _, err := Sign(ed25519.PrivateKey(make([]byte, 32)), []byte("data")); err == nil {
		t.Error("Sign() accepted a 32-byte private key")
	}
}
