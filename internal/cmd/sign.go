package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sturdy-barnacle/sparkle-sign/internal/appcast"
	"github.com/sturdy-barnacle/sparkle-sign/internal/artifact"
	"github.com/sturdy-barnacle/sparkle-sign/internal/signing"
)

// keygenGuidance is appended to the missing-key error so the operator knows
// how to create the seed file.
const keygenGuidance = `To generate the key file, run:
  arch -arm64 ./Frameworks/generate_keys --account ed25519 -x ~/.tibok_sparkle_key.pem`

func banner(out io.Writer) {
	fmt.Fprintln(out, strings.Repeat("=", 42))
}

// runSign signs the DMG at dmgPath with the Ed25519 seed at keyPath and
// prints the base64 signature plus a ready-to-paste appcast enclosure
// element. Both paths are validated before anything is printed, and the
// signature block is only emitted after the full sign succeeds.
func runSign(out io.Writer, dmgPath, keyPath string) error {
	if err := artifact.Check(dmgPath); err != nil {
		return err
	}
	if err := signing.CheckKeyFile(keyPath); err != nil {
		return fmt.Errorf("%w\n\n%s", err, keygenGuidance)
	}

	banner(out)
	fmt.Fprintln(out, "Signing DMG with EdDSA Key (Ed25519)")
	banner(out)
	fmt.Fprintf(out, "DMG: %s\n", dmgPath)
	fmt.Fprintf(out, "Key file: %s\n", keyPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Signing DMG...")

	privateKey, err := signing.LoadSeed(keyPath)
	if err != nil {
		return err
	}

	art, err := artifact.Load(dmgPath)
	if err != nil {
		return err
	}

	signature, err := signing.Sign(privateKey, art.Data)
	if err != nil {
		return fmt.Errorf("failed to sign DMG: %w", err)
	}

	signatureB64 := signing.EncodeSignature(signature)
	enclosure := appcast.NewEnclosure(signatureB64, art.Size)

	fmt.Fprintln(out)
	banner(out)
	fmt.Fprintln(out, "✓ Signature Generated Successfully")
	banner(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "EdDSA Signature (for appcast.xml):")
	fmt.Fprintln(out)
	fmt.Fprintln(out, signatureB64)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "File Information:")
	fmt.Fprintf(out, "  Size: %d bytes\n", art.Size)
	fmt.Fprintf(out, "  URL: %s\n", appcast.DownloadURL)
	fmt.Fprintln(out)
	banner(out)
	fmt.Fprintln(out, "Update appcast.xml with this signature:")
	banner(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Replace the enclosure element with:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, enclosure.Render())
	fmt.Fprintln(out)

	return nil
}
