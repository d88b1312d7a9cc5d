package main

import (
	"os"

	"vigenere-backend/cli"
)

func main() {
	os.Exit(cli.Execute())
}
