package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/Iron-Ham/scoreboard/internal/event"
	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/Iron-Ham/scoreboard/internal/metrics"
	"github.com/Iron-Ham/scoreboard/internal/scoreboard"
	"github.com/Iron-Ham/scoreboard/internal/web"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoreboard as a web page",
	Long: `Serve the scoreboard as a server-rendered web page.

Every control is a plain form button. The current score is also
available as JSON on /api/score, and Prometheus metrics are exposed on
/metrics unless server.metrics is false.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "", "address to listen on (default from server.listen, \":8080\")")
	_ = viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger = logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
	}

	bus := event.NewBus()
	board := scoreboard.New(scoreboard.WithBus(bus), scoreboard.WithLogger(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := newWebServer(board, bus, cfg, logger)
	if err != nil {
		return err
	}
	return serve(ctx, srv, logger)
}

// newWebServer builds the HTTP surface for board, wiring Prometheus metrics
// to the board's bus when enabled.
func newWebServer(board *scoreboard.Board, bus *event.Bus, cfg *config.Config, logger *logging.Logger) (*web.Server, error) {
	opts := []web.Option{web.WithLogger(logger)}

	if cfg.Server.Metrics {
		reg := prom.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics.Attach(bus, metrics.NewPrometheusRecorder(reg))
		if err := metrics.RegisterScoreGauges(reg, board); err != nil {
			return nil, fmt.Errorf("failed to register score metrics: %w", err)
		}
		opts = append(opts, web.WithMetrics(metrics.HTTPHandler(reg)))
	}

	return web.NewServer(board, cfg, opts...), nil
}

// serve runs srv until ctx is done or the listener fails, then shuts it
// down gracefully.
func serve(ctx context.Context, srv *web.Server, logger *logging.Logger) error {
	errCh := make(chan error, 1)

	var wg conc.WaitGroup
	wg.Go(func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	})

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		serveErr = fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && serveErr == nil {
		serveErr = fmt.Errorf("failed to shut down http server: %w", err)
	}

	wg.Wait()
	return serveErr
}
