package main

import (
	"fmt"
	"os"

	"github.com/bjaus/printerator/internal/cli"
)

func main() {
	if err := cli.NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
