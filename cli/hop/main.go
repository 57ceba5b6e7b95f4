package main

import (
	"os"

	hopcmder "github.com/papercomputeco/hop/cmd/hop"
)

func main() {
	cmd := hopcmder.NewHopCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
