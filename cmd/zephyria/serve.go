package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rusenback/zephyria/internal/config"
	"github.com/rusenback/zephyria/internal/logger"
	"github.com/rusenback/zephyria/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web showcase",
	Long: `Serve the landing page over HTTP. Each browser view streams its own
live chart frames from /api/metrics/stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addShowcaseFlags(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default "+config.DefaultAddr+")")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfiguration(settings, cmd)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format, os.Stderr); err != nil {
		return err
	}

	srv, err := web.NewServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner(cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down web showcase")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("web showcase failed", "error", err)
		return err
	}
	return nil
}

func printBanner(cfg *config.Config) {
	brand := color.New(color.FgCyan, color.Bold)
	muted := color.New(color.FgHiBlack)
	ok := color.New(color.FgGreen)

	brand.Println("ZEPHYRIA")
	muted.Printf("  preset  ")
	ok.Println(cfg.Preset)
	muted.Printf("  listen  ")
	ok.Println(cfg.Web.Addr)
	muted.Println("  ctrl+c to stop")
}
