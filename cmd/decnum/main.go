package main

import (
	"os"

	"github.com/hashicorp-forge/decnum/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
