// Command astquery is a thin, non-embedded entry point exercising the
// core: run a one-shot parse from the command line, or start the MCP tool
// surface over stdio. The CLI itself is explicitly out of scope
// functionality (spec.md §1: "host database's SQL binder... the core is
// agnostic"); this wrapper exists only so the core has a runnable surface
// outside a host engine, grounded on the teacher's cmd/lci/main.go urfave
// CLI style and signal-driven graceful shutdown.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/astengine/internal/astparse"
	"github.com/standardbeagle/astengine/internal/hostapi/mcpregistry"
	"github.com/standardbeagle/astengine/internal/hostapi/osfs"
	"github.com/standardbeagle/astengine/internal/langadapter"
	"github.com/standardbeagle/astengine/internal/obslog"
	"github.com/standardbeagle/astengine/internal/scheduler"
)

func main() {
	app := &cli.App{
		Name:  "astquery",
		Usage: "AST ingestion and query engine (standalone harness)",
		Commands: []*cli.Command{
			{
				Name:  "parse",
				Usage: "Parse one or more file paths or glob patterns and print the run's counters and per-file AST results as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "Force a single language instead of auto-detecting per file"},
					&cli.BoolFlag{Name: "ignore-errors", Usage: "Skip failed files instead of aborting"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Worker count (default: NumCPU)"},
				},
				Action: parseCommand,
			},
			{
				Name:   "mcp",
				Usage:  "Start the MCP tool server with stdio transport",
				Action: mcpCommand,
			},
			{
				Name:  "languages",
				Usage: "List supported languages",
				Action: func(c *cli.Context) error {
					for _, name := range langadapter.NewRegistry().SupportedLanguages() {
						fmt.Println(name)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "astquery: %v\n", err)
		os.Exit(1)
	}
}

func parseCommand(c *cli.Context) error {
	patterns := c.Args().Slice()
	if len(patterns) == 0 {
		return fmt.Errorf("parse requires at least one path or glob pattern")
	}

	workers := c.Int("workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	fs := osfs.NewFS()
	sched := osfs.NewWorkerPool(workers)
	registry := langadapter.NewRegistry()

	opts := scheduler.Options{
		Language:     c.String("language"),
		IgnoreErrors: c.Bool("ignore-errors"),
		Config:       astparse.DefaultExtractionConfig(),
	}

	result, err := scheduler.RunPatterns(fs, sched, registry, patterns, opts, workers)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"files_processed":    result.FilesProcessed,
		"total_nodes":        result.TotalNodes,
		"errors_encountered": result.ErrorsEncountered,
		"error_messages":     result.ErrorMessages,
		"results":            result.Results,
	})
}

func mcpCommand(c *cli.Context) error {
	obslog.SetHostMode(true)

	fs := osfs.NewFS()
	sched := osfs.NewWorkerPool(runtime.NumCPU())
	registry := langadapter.NewRegistry()

	reg := mcpregistry.New(fs, sched, registry)
	reg.RegisterCoreTools()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	obslog.LogRegistry("starting MCP server with stdio transport")
	return reg.Server().Run(ctx, &mcp.StdioTransport{})
}
