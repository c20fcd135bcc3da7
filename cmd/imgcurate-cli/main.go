package main

import (
	"context"
	"os"

	"imgcurate/cmd/imgcurate-cli/cmd"
)

const version = "0.1.0"

func main() {
	if err := cmd.Execute(context.Background(), version); err != nil {
		os.Exit(1)
	}
}
