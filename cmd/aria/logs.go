package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"aria-go/pkg/log"
)

var logsCommand = &cli.Command{
	Name:  "logs",
	Usage: "show recent entries from the SQLite event store",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "dbfile", Value: "aria-events.db", Usage: "SQLite database file (relative paths resolve under ~/.aria-go)"},
		&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 20, Usage: "number of entries to show"},
	},
	Action: logsCmd,
}

func logsCmd(c *cli.Context) error {
	if err := log.Init(c.String("dbfile")); err != nil {
		return err
	}
	defer log.Close()

	entries, err := log.GetLastNLogs(c.Int("count"))
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%6d  %s  %s\n", e.ID, e.InsertedAt.Format("2006-01-02 15:04:05"), e.Event)
	}
	return nil
}
