package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"vigenere-backend/config"
	"vigenere-backend/crypto"
	"vigenere-backend/textfile"
)

type cipherCommand struct {
	use   string
	short string
	apply func(v *crypto.Vigenere, text, key string) (string, error)
}

var (
	encryptCommand = cipherCommand{
		use:   "encrypt",
		short: "Encrypt text with a key",
		apply: (*crypto.Vigenere).Encrypt,
	}
	decryptCommand = cipherCommand{
		use:   "decrypt",
		short: "Decrypt text with a key",
		apply: (*crypto.Vigenere).Decrypt,
	}
)

func newCipherCommand(def cipherCommand) *cobra.Command {
	var (
		key            string
		inPath         string
		outPath        string
		foldDiacritics bool
	)

	cmd := &cobra.Command{
		Use:   def.use + " [text...]",
		Short: def.short,
		Long: def.short + `.

The text is taken from the arguments, or from --in (a file path, or "-" for
stdin) when no arguments are given. Letters are uppercased and everything
outside A-Z is discarded before the cipher runs.`,
		Example: fmt.Sprintf("  vigenere %s --key LEMON attack at dawn\n  vigenere %s --key LEMON --in mensaje.txt --out resultado.txt", def.use, def.use),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && cmd.Flags().Changed("in") {
				return errors.New("text arguments cannot be combined with --in")
			}
			if utf8.RuneCountInString(strings.TrimSpace(key)) < config.DefaultMinKeyLength {
				return fmt.Errorf("key must be at least %d characters long", config.DefaultMinKeyLength)
			}

			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				var err error
				if text, err = textfile.Read(inPath, cmd.InOrStdin()); err != nil {
					return err
				}
			}

			v := crypto.NewVigenere(crypto.WithDiacriticFolding(foldDiacritics))
			result, err := def.apply(v, text, key)
			if err != nil {
				return fmt.Errorf("%s failed: %w", def.use, err)
			}

			if dropped := v.Discarded(text); dropped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d characters discarded\n", dropped)
			}
			return textfile.Write(outPath, result, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key (required)")
	cmd.Flags().StringVarP(&inPath, "in", "i", textfile.Stdio, `input file, "-" for stdin`)
	cmd.Flags().StringVarP(&outPath, "out", "o", textfile.Stdio, `output file, "-" for stdout`)
	cmd.Flags().BoolVar(&foldDiacritics, "fold-diacritics", false, "map accented letters to their base letter instead of discarding them")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
