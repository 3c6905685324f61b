package main

import (
	"os"

	"gradweaver/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
