package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/priyankdesai/smartshop/internal/assistant"
	"github.com/priyankdesai/smartshop/internal/catalog"
	"github.com/priyankdesai/smartshop/internal/server"
	"github.com/priyankdesai/smartshop/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shopping assistant server",
	Long:  `Starts the smartshop server with the chat REST API, WebSocket endpoint, and catalog browsing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}

		database, store, err := openCatalog(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		provider, model := createProviderFromConfig(cfg)

		asst := assistant.New(session.NewStore(), store, provider, model)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			DataDir:  cfg.DataDir,
			AllowAll: cfg.AllowAllOrigins,
		}, database)

		asst.RegisterRoutes(srv.Router())
		catalog.RegisterRoutes(srv.Router(), store)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "smartshop v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DatabasePath())
		if provider != nil {
			fmt.Fprintf(os.Stderr, "  Generation: %s (%s)\n", provider.Name(), model)
		} else {
			fmt.Fprintln(os.Stderr, "  Generation: off (built-in phrasing)")
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
