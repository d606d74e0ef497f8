package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xunop/amana-bookstore/internal/config"
	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/Xunop/amana-bookstore/internal/server"
	"github.com/Xunop/amana-bookstore/internal/storage"
	"github.com/Xunop/amana-bookstore/internal/store"
	"github.com/Xunop/amana-bookstore/internal/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	greetingBanner = `
 █████  ███    ███  █████  ███    ██  █████  
██   ██ ████  ████ ██   ██ ████   ██ ██   ██ 
███████ ██ ████ ██ ███████ ██ ██  ██ ███████ 
██   ██ ██  ██  ██ ██   ██ ██  ██ ██ ██   ██ 
██   ██ ██      ██ ██   ██ ██   ████ ██   ██ 
`
	requestLogQueueSize = 1024
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:          "bookstore",
		Short:        "Amana Bookstore is a catalog API for books and reviews",
		SilenceUsage: true,
		RunE:         runServe,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create the missing collections",
		RunE:  runInit,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.Version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (toml, yaml or json)")
	rootCmd.AddCommand(serveCmd, initCmd, versionCmd)
}

func setup(ctx context.Context) (*config.Options, *store.Store, error) {
	opts, err := config.Load(configFile)
	if err != nil {
		log.Fallback("Error", fmt.Sprintf("Error loading config: %v", err))
		return nil, nil, err
	}
	log.Init(opts)

	driver, err := storage.Open(ctx, opts)
	if err != nil {
		log.Error("Error opening storage", zap.Error(err))
		return nil, nil, err
	}
	st := store.NewStore(driver)
	if err := st.Ping(ctx); err != nil {
		log.Error("Error pinging storage", zap.Error(err))
		st.Close()
		return nil, nil, err
	}
	return opts, st, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, st, err := setup(ctx)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer st.Close()

	log.Fallback("Info", greetingBanner)
	log.Info("Using storage",
		zap.String("driver", opts.StorageDriver),
		zap.String("data", opts.Data))

	requestLog := log.NewRequestLog(opts)
	defer requestLog.Close()
	pool := worker.NewRequestLogPool(requestLog, requestLogQueueSize)

	srv := server.StartServer(ctx, opts, st, pool)

	<-ctx.Done()
	log.Info("Shutting down")
	if err := server.Shutdown(srv, time.Duration(opts.ShutdownTimeout)*time.Second); err != nil {
		log.Error("Error shutting down HTTP server", zap.Error(err))
	}
	pool.Close()
	log.Info("Server stopped")
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	_, st, err := setup(ctx)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer st.Close()

	created, err := st.Init(ctx)
	if err != nil {
		log.Error("Error creating collections", zap.Error(err))
		return err
	}
	if len(created) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All collections already exist")
		return nil
	}
	for _, c := range created {
		fmt.Fprintf(cmd.OutOrStdout(), "Created collection %s\n", c)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
