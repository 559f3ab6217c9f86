package main

import (
	"fmt"
	"os"

	"github.com/deepmining/go-mlpipeline/internal/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
