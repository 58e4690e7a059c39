package main

import (
	"context"
	"os"

	"github.com/cytoskel/cytotraj/internal/cli"
	"github.com/cytoskel/cytotraj/internal/logging"
)

func main() {
	ctx := context.Background()
	if err := cli.Run(ctx, os.Args, os.Stdout); err != nil {
		logging.Default().Error("cytotraj failed", "error", err)
		os.Exit(1)
	}
}
