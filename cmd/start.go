/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/tieubaoca/docextractor/handler"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the syllabus extraction server",
	Long: `Starts an HTTP server that accepts syllabus PDF uploads, stores the
extracted records and serves them back by course code.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			newLogger("development").Fatal("Failed to load config", "error", err)
		}
		log := newLogger(cfg.Mode)
		defer log.Sync()

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		if cfg.Mode == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg, log)
		if err != nil {
			log.Fatal("Failed to initialize", "error", err)
		}
		defer a.Close(context.Background())

		router := handler.NewRouter(a.service, log, handler.RouterConfig{
			AllowOrigins:  cfg.Cors.AllowOrigins,
			UploadSecret:  cfg.Auth.UploadSecret,
			MaxUploadSize: cfg.MaxUploadSize,
		})
		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		}

		go func() {
			log.Info("Starting server", "port", cfg.Port, "store", cfg.Store)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("Server error", "error", err)
			}
		}()

		<-ctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("port", "p", "", "port to listen on, overrides the config file")
}
