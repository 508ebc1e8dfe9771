package main

import (
	"os"

	"github.com/Trevorton27/tokuWebDev-sub003/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
