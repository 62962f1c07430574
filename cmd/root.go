package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"static-server/core/config"
	"static-server/core/loader"
	"static-server/core/logger"
	"static-server/core/server"
	"static-server/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "static-server [port]",
	Short: "Static file server",
	Long: `Serves the files next to the executable over plain HTTP on all interfaces,
adding security headers and fixing the content type of .geojson, .js and .css files.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		var portErr *server.InvalidPortError
		if errors.As(err, &portErr) {
			fmt.Fprintln(RootCmd.OutOrStdout(), portErr.Error())
			os.Exit(1)
		}

		// Console encoding with debug level for ISO8601 timestamps
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// The port argument is checked before anything else touches the system.
	var argPort string
	if len(args) > 0 {
		argPort = args[0]
		if _, err := server.ParsePort(argPort); err != nil {
			return err
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	return serve(cmd.Context(), cfg.Server, argPort, cmd.OutOrStdout(), logg)
}

// serve runs the server until ctx is cancelled or the process is interrupted.
// argPort, when not empty, overrides the configured port.
func serve(ctx context.Context, cfg server.Config, argPort string, out io.Writer, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	portValue := cfg.Port
	if argPort != "" {
		portValue = argPort
	}
	port := server.DefaultPort
	if portValue != "" {
		p, err := server.ParsePort(portValue)
		if err != nil {
			return err
		}
		port = p
	}

	root, err := server.ResolveRoot(cfg.Root)
	if err != nil {
		return err
	}

	srv := server.New(cfg, port, logg)

	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(root, logg))
	if err := mgr.LoadAll(srv.App()); err != nil {
		return err
	}

	if err := srv.Listen(); err != nil {
		return err
	}
	server.Banner(out, srv.Port(), root)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	// A second interrupt kills the process the default way.
	stop()

	fmt.Fprintln(out)
	fmt.Fprintln(out, server.StoppedMessage)
	if err := srv.Shutdown(); err != nil {
		logg.Warn("Shutdown failed", zap.Error(err))
	}
	return <-errCh
}
