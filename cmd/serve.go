package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chxlky/taskboard-api/api"
	"github.com/chxlky/taskboard-api/database"
	"github.com/chxlky/taskboard-api/internal/repository"
	"github.com/chxlky/taskboard-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		database.Close(db)
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	boardRepo := repository.NewBoardRepository(db, repository.DeletePolicy(cfg.Database.BoardDeletePolicy))
	taskRepo := repository.NewTaskRepository(db)
	apiHandler := &api.Handler{
		Boards: service.NewBoardService(boardRepo),
		Tasks:  service.NewTaskService(taskRepo),
		DB:     sqlDB,
	}
	router := api.NewRouter(logger, apiHandler, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	zap.L().Info("Starting server", zap.String("port", cfg.Server.Port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	var once sync.Once

	cleanup := func(reason string) {
		zap.L().Info("Shutdown initiated", zap.String("reason", reason))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		zap.L().Info("Shutting down HTTP server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Error shutting down server", zap.Error(err))
		} else {
			zap.L().Info("HTTP server shut down gracefully.")
		}

		database.Close(db)
		close(done)
	}

	var runErr error
	go func() {
		select {
		case sig := <-sigCh:
			once.Do(func() { cleanup(sig.String()) })

			// if a second signal is caught, exit immediately
			go func() {
				<-sigCh
				zap.L().Info("Second interrupt signal received. Exiting immediately.")
				os.Exit(1)
			}()
		case <-ctx.Done():
			once.Do(func() { cleanup("context cancelled") })
		case err, ok := <-serverErr:
			if ok {
				runErr = fmt.Errorf("server error: %w", err)
			}
			once.Do(func() { cleanup("server stopped") })
		}
	}()

	<-done
	zap.L().Info("Exiting...")
	return runErr
}
