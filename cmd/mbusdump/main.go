// Command mbusdump decodes M-Bus telegrams from a file or stdin and
// prints their frame and record structure.
package main

import (
	"fmt"
	"os"

	"github.com/mbus-go/mbus/cmd/mbusdump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
