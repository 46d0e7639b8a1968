// Command driver simulates a courier: it collects every package a vendor hands over
// and reports it delivered after a delay.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caps/cmd"
	"caps/internal/adapters/out/hubclient"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	var (
		server   string
		interval time.Duration
	)
	flagSet := pflag.NewFlagSet("driver", pflag.ContinueOnError)
	flagSet.StringVar(&server, "server", configs.ServerURL, "hub WebSocket endpoint")
	flagSet.DurationVar(&interval, "interval", 3*time.Second, "time from pickup to delivery")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := hubclient.Dial(ctx, server, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	driver := hubclient.NewDriver(client, interval, logger)
	defer driver.Stop()

	logger.Info("Driver connected", slog.String("server", server))
	return client.Run(ctx)
}
