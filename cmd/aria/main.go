package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"aria-go/pkg/log"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "aria",
		Usage:   "ARIA block cipher (RFC 5794) self-test, fuzz/benchmark, and block tool",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Before: func(c *cli.Context) error {
			log.SetStd()
			return nil
		},
		Commands: []*cli.Command{
			selftestCommand,
			benchCommand,
			cryptCommand,
			logsCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}
