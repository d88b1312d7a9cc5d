// Package cli implements the vigenere command line: the HTTP server and the
// file based encrypt/decrypt commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vigenere-backend/handlers"
)

// NewRootCommand assembles the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vigenere",
		Short:         "Vigenère cipher API and command line tool",
		Long:          `Encrypt and decrypt text with the Vigenère cipher, from files or over HTTP.`,
		Version:       handlers.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newCipherCommand(encryptCommand),
		newCipherCommand(decryptCommand),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
