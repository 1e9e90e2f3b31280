package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// defaultKeyFile is the fixed dotfile under the user's home directory holding
// the base64-encoded Ed25519 seed.
const defaultKeyFile = ".tibok_sparkle_key.pem"

var rootCmd = &cobra.Command{
	Use:   "sparkle-sign <path-to-dmg> [path-to-key-file]",
	Short: "Sign a DMG with an EdDSA (Ed25519) key for Sparkle updates",
	Long: `Signs a DMG file with an EdDSA private key for Sparkle updates.
Outputs the signature suitable for appcast.xml.

Arguments:
  <path-to-dmg>       Path to the DMG file to sign
  [path-to-key-file]  Path to EdDSA private key (default: ~/.tibok_sparkle_key.pem)`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dmgPath := args[0]

		var keyPath string
		if len(args) > 1 {
			keyPath = args[1]
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("could not get user home directory: %w", err)
			}
			keyPath = filepath.Join(homeDir, defaultKeyFile)
		}

		return runSign(cmd.OutOrStdout(), dmgPath, keyPath)
	},
}

// Execute runs the CLI. Failures are reported as a single descriptive line on
// standard output; the caller decides the exit status.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}
	return nil
}
