// Command ciphercli encrypts and decrypts text with the classical ciphers
// provided by the go-cipher library.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tangelo-labs/go-cipher"
)

var (
	cipherName string
	key        string
	text       string
)

func main() {
	root := &cobra.Command{
		Use:   "ciphercli",
		Short: "Classical substitution ciphers for text",
		Long: `ciphercli transforms text with one of four classical substitution
ciphers: shift (fixed offset), keyword (repeating keyword offsets),
position (letter to alphabet position) and mirror (alphabet reversal).

Examples:
  ciphercli encrypt --cipher shift --key 3 --text "HELLO, WORLD!"
  ciphercli decrypt --cipher keyword --key lemon --text "MYGPQWFGSOIS"
  echo "HELLO" | ciphercli encrypt --cipher position`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&cipherName, "cipher", "c", "shift", "cipher to use: shift, keyword, position or mirror")
	root.PersistentFlags().StringVarP(&key, "key", "k", "", "integer key for shift, keyword for keyword; leave empty otherwise")
	root.PersistentFlags().StringVarP(&text, "text", "t", "", "text to transform; read from stdin when empty")

	root.AddCommand(
		&cobra.Command{
			Use:   "encrypt",
			Short: "Apply the forward transform",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, cipher.Forward)
			},
		},
		&cobra.Command{
			Use:   "decrypt",
			Short: "Apply the backward transform",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, cipher.Backward)
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, dir cipher.Direction) error {
	kind, err := cipher.ParseKind(cipherName)
	if err != nil {
		return err
	}

	c, err := cipher.New(kind, key)
	if err != nil {
		return err
	}

	message := text
	if message == "" {
		raw, rErr := io.ReadAll(cmd.InOrStdin())
		if rErr != nil {
			return rErr
		}

		message = strings.TrimSuffix(string(raw), "\n")
	}

	out, err := dir.Apply(c, message)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}
