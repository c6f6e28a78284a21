package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "warehouse/api/swagger" // swagger docs
	"warehouse/internal/config"
	"warehouse/internal/handler"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API, websocket hub and background jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			gin.SetMode(cfg.Server.GinMode)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			go a.hub.Run()
			a.scheduler.Start()

			srv := &http.Server{
				Addr:    ":" + cfg.Server.Port,
				Handler: handler.NewRouter(a.routerConfig()),
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Server listening on :%s", cfg.Server.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
			case <-ctx.Done():
				log.Println("Shutdown signal received")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			a.scheduler.Stop(shutdownCtx)
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server shutdown: %v", err)
				return err
			}
			log.Println("Server stopped")
			return nil
		},
	}
}
