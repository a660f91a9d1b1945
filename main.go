package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/TWRT/direction-dashboard/internal/api"
	"github.com/TWRT/direction-dashboard/internal/config"
	"github.com/TWRT/direction-dashboard/internal/logging"
	"github.com/TWRT/direction-dashboard/internal/metrics"
	"github.com/TWRT/direction-dashboard/internal/repository"
	"github.com/TWRT/direction-dashboard/internal/service"
	"github.com/spf13/cobra"
)

type app struct {
	cfg    config.Config
	logger *logging.Logger
	db     *sql.DB
	repos  *repository.Repositories
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		a      app
		dbPath string
		addr   string
	)

	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "Team and task dashboard for the Direction des études",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			return a.open(cmd.Context(), cfg)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides DASHBOARD_DB_PATH)")
	root.PersistentFlags().StringVar(&addr, "addr", "", "listen address (overrides DASHBOARD_ADDR)")

	root.AddCommand(newServeCmd(&a), newExportCmd(&a), newReportCmd(&a))
	return root
}

func (a *app) open(ctx context.Context, cfg config.Config) error {
	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	a.db = db
	a.repos = repository.NewRepositories(db, a.logger)
	a.logger.Info("database ready", "path", cfg.DBPath)

	if cfg.Seed {
		sample, err := repository.LoadSample(cfg.SeedFile)
		if err != nil {
			return err
		}
		seeded, err := a.repos.Seed(ctx, sample)
		if err != nil {
			return err
		}
		if len(seeded) > 0 {
			a.logger.Info("sample data written", "keys", seeded)
		}
	}
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           api.SetupRouter(a.db, a.cfg, a.logger, metrics.New()),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("server listening", "addr", a.cfg.Addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export [category]",
		Short: "Write the full workbook, or one category (actions, members, emails, meetings, objectives)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exports := api.NewServices(a.repos, a.cfg, a.logger, nil).Exports

			var (
				art service.Artifact
				err error
			)
			if len(args) == 0 {
				art, err = exports.ExportAll(cmd.Context())
			} else {
				var c service.Category
				if c, err = service.ParseCategory(args[0]); err != nil {
					return err
				}
				art, err = exports.ExportCategory(cmd.Context(), c)
			}
			if err != nil {
				return err
			}
			return writeArtifact(cmd, out, art)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	var kind, period, format, out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an analytics or detailed report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := service.ParseReportConfig(kind, period)
			if err != nil {
				return err
			}
			exports := api.NewServices(a.repos, a.cfg, a.logger, nil).Exports

			var art service.Artifact
			switch format {
			case "pdf":
				art, err = exports.ReportPDF(cmd.Context(), cfg)
			case "xlsx":
				if cfg.Kind != service.ReportAnalytics {
					return fmt.Errorf("%w: only the analytics report has a workbook form", service.ErrInvalidKind)
				}
				art, err = exports.ReportWorkbook(cmd.Context(), cfg.Period)
			default:
				return fmt.Errorf("unknown format %q (pdf or xlsx)", format)
			}
			if err != nil {
				return err
			}
			return writeArtifact(cmd, out, art)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(service.ReportAnalytics), "analytics, actions, team or meetings")
	cmd.Flags().StringVar(&period, "period", string(service.PeriodMonth), "week, month, quarter or year")
	cmd.Flags().StringVar(&format, "format", "pdf", "pdf or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	return cmd
}

// writeArtifact writes to a temp file first so a failed write never leaves a
// truncated artifact under the final name.
func writeArtifact(cmd *cobra.Command, dir string, art service.Artifact) error {
	path := filepath.Join(dir, art.Name)
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrExportFailed, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(art.Data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", service.ErrExportFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", service.ErrExportFailed, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", service.ErrExportFailed, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
