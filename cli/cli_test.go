package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigenere-backend/crypto"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEncryptArguments(t *testing.T) {
	out, errOut, err := run(t, "", "encrypt", "--key", "LEMON", "attack", "at", "dawn")
	require.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR\n", out)
	assert.Equal(t, "2 characters discarded\n", errOut)
}

func TestDecryptStdin(t *testing.T) {
	out, errOut, err := run(t, "LXFOPVEFRNHR", "decrypt", "-k", "lemon")
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN\n", out)
	assert.Empty(t, errOut)
}

func TestEncryptDecryptFiles(t *testing.T) {
	dir := t.TempDir()
	plainPath := filepath.Join(dir, "ejemplo.txt")
	cipherPath := filepath.Join(dir, "mensaje_cifrado.txt")
	resultPath := filepath.Join(dir, "mensaje_descifrado.txt")
	require.NoError(t, os.WriteFile(plainPath, []byte("Hola mundo,\nadiós mundo.\n"), 0o644))

	_, _, err := run(t, "", "encrypt", "--key", "CLAVE", "--in", plainPath, "--out", cipherPath)
	require.NoError(t, err)
	_, _, err = run(t, "", "decrypt", "--key", "CLAVE", "--in", cipherPath, "--out", resultPath)
	require.NoError(t, err)

	got, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	assert.Equal(t, crypto.NewVigenere().Normalize("Hola mundo,\nadiós mundo.\n"), string(got))
	assert.Equal(t, "HOLAMUNDOADISMUNDO", string(got))
}

func TestFoldDiacriticsFlag(t *testing.T) {
	out, _, err := run(t, "", "encrypt", "--key", "AAA", "--fold-diacritics", "adiós")
	require.NoError(t, err)
	assert.Equal(t, "ADIOS\n", out)
}

func TestEncryptReportsDiscarded(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantOut string
		wantErr string
	}{
		{"sharp s expands", "ßßß", "CWQCWQ\n", ""},
		{"expansion does not hide drops", "ß!", "CW\n", "1 characters discarded\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := run(t, "", "encrypt", "--key", "KEY", tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantErr, errOut)
		})
	}
}

func TestCipherCommandErrors(t *testing.T) {
	_, _, err := run(t, "", "encrypt", "HELLO")
	assert.Error(t, err, "missing --key")

	_, _, err = run(t, "", "encrypt", "--key", "123", "HELLO")
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrEmptyKey)

	_, _, err = run(t, "", "encrypt", "--key", "AB", "HELLO")
	require.Error(t, err)
	assert.EqualError(t, err, "key must be at least 3 characters long")

	_, _, err = run(t, "", "decrypt", "--key", " AB  ", "HELLO")
	assert.Error(t, err, "surrounding spaces do not count")

	_, _, err = run(t, "", "encrypt", "--key", "KEY", "--in", "x.txt", "HELLO")
	assert.Error(t, err)

	_, _, err = run(t, "", "decrypt", "--key", "KEY", "--in", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestServeRejectsInvalidFlags(t *testing.T) {
	_, _, err := run(t, "", "serve", "--log-format", "xml")
	assert.Error(t, err)
}
