// Command schemectl is the operator CLI: schema migrations, threshold
// imports, one-off metric evaluation and access tokens for scripts.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/netscheme-backend/internal/adapter/postgres"
	"github.com/heartmarshall/netscheme-backend/internal/app"
	"github.com/heartmarshall/netscheme-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// env is what every subcommand needs once flags are parsed.
type env struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "schemectl",
		Short:         "Operate the netscheme change-control backend",
		SilenceUsage:  true,
		Version:       app.BuildVersion(),
	}
	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "",
		"path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newMigrateCmd(e),
		newEvaluateCmd(e),
		newThresholdsCmd(e),
		newTokenCmd(e),
	)
	return root
}

// load reads configuration once. Called from RunE so that --help works
// without a database.
func (e *env) load() error {
	if e.cfg != nil {
		return nil
	}
	path := e.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = app.NewLogger(cfg.Log)
	return nil
}

func (e *env) connect(ctx context.Context) (*pgxpool.Pool, error) {
	if err := e.load(); err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, e.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
