package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/filmoscope"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Articles filmoscope.ArticleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Sync   SyncCmd   `cmd:"" help:"Run one extraction pass over a dump"`
	Export ExportCmd `cmd:"" help:"Export stored articles as JSON Lines"`
	Stats  StatsCmd  `cmd:"" help:"Show store statistics"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Dump      string `arg:"" optional:"" help:"Dump file stem (without .zst/.bz2 extension)"`
	BatchSize int    `short:"b" default:"50" help:"Pages per store transaction"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `short:"o" help:"Write to file instead of stdout"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
