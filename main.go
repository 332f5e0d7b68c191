package main

import (
	"os"

	"github.com/talentsift/cv-distiller/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
