// Command motion plays, previews and inspects animation scenes.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/motion/cmd/motion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
