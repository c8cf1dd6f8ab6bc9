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
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/hiring-desk/internal/api"
	"github.com/spigell/hiring-desk/internal/secrets"
	"github.com/spigell/hiring-desk/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the hiring desk HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("seed-file", "", "fixture with jobs, candidates and agents. Generated demo data is used when unset.")
	serveCmd.Flags().Duration("call-delay", store.DefaultCallDelay, "how long a simulated call takes")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("seed.file", serveCmd.Flags().Lookup("seed-file"))
	viper.BindPFlag("calls.delay", serveCmd.Flags().Lookup("call-delay"))
}

func serve() {
	log, config := setup()

	token, err := secrets.Load(secrets.Source{
		Name:     "api token",
		Value:    config.Server.Token,
		File:     config.Server.TokenFile,
		Optional: true,
	})
	if err != nil {
		log.Fatal("loading api token", zap.Error(err), zap.String("hint", "set server.token-file or HIRING_DESK_SERVER_TOKEN_FILE"))
	}
	if token == "" {
		log.Warn("api token is not configured, /v1 is open")
	}

	st, dialer, err := newDesk(config, log)
	if err != nil {
		log.Fatal("preparing the desk", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         config.Server.Addr,
		Handler:      api.NewHandler(st, dialer, api.Options{Version: version, Token: token, Logger: log.Named("api")}),
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting the hiring desk", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Duration("timeout", config.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		dialer.Close()

		if werr := st.Wait(shutdownCtx); werr != nil {
			log.Warn("calls still in flight", zap.Int("in_flight", st.Stats().CallsInFlight), zap.Error(werr))
		}

		if err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
	log.Info("server stopped")
}
