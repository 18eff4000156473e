package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/foodee/internal/server"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site, rendering content on every page request",
	Long: `Starts an HTTP server that renders the page shell with the current content
on each request and serves the site's static assets. The render log is
available under /api/renders and Prometheus metrics under /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p, err := buildPipeline(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer p.Close()

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			SiteDir:  cfg.SiteDir,
			Static:   cfg.Server.Static,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, p.shell, p.site,
			server.WithDatabase(p.db),
			server.WithGatherer(p.registry),
			server.WithLogger(logger),
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		if serveWatch {
			g.Go(func() error {
				return p.shell.Watch(gctx)
			})
		}

		logger.Info("foodee starting", "version", Version, "site_dir", cfg.SiteDir,
			"content", cfg.Content.URL, "preview", string(cfg.Preview.Backend))
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the page shell when it changes")
	rootCmd.AddCommand(serveCmd)
}
