package main

import (
	"os"

	"github.com/dr-rompecabezas/langportal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
