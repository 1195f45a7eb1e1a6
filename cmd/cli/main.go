package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/emergencyhelp/internal/buildinfo"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/cli"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/client"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/config"
	"github.com/dmitrijs2005/emergencyhelp/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit code. Deferred cleanup completes before it
// returns, so buffered log records and the database handle are released.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return 1
	}
	defer db.Close()

	app, err := cli.Bootstrap(cfg, db, logger, bufio.NewReader(stdin), stdout)
	if err != nil {
		logger.Error(ctx, "error starting client", "error", err)
		return 1
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
	}
	return 0
}
