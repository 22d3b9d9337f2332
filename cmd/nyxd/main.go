package main

import (
	"os"

	"nyxventure/internal/cli"
)

func main() { os.Exit(cli.Main()) }
