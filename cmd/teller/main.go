package main

import (
	"os"

	"github.com/JoeShih716/go-teller/cmd/teller/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
