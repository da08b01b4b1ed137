package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/lumina/internal/client/cli"
	"github.com/dmitrijs2005/lumina/internal/client/config"
	"github.com/dmitrijs2005/lumina/internal/flagx"
	"github.com/dmitrijs2005/lumina/internal/logging"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	log := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	return cli.Execute(ctx, app, flagx.StripArgs(args, config.Flags))
}
