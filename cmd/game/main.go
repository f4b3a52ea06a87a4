package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/cyberjet/internal/audio"
	"github.com/tomz197/cyberjet/internal/config"
	"github.com/tomz197/cyberjet/internal/logging"
	"github.com/tomz197/cyberjet/internal/loop/client"
	"github.com/tomz197/cyberjet/internal/loop/server"
	"golang.org/x/term"
)

func main() {
	settings, err := config.Load(config.GetEnv("CYBERJET_CONFIG_DIR", "."))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs go to a file.
	logger, closeLog, err := logging.OpenFile(settings.LogFile, settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeLog()
	}()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := server.NewServer(server.WithLogger(logger))
	go hub.Run(ctx)

	reader := bufio.NewReader(os.Stdin)
	c := client.NewClient(hub, reader, os.Stdout, client.ClientOptions{
		Username:   config.GetEnv("USER", "player"),
		ViewWidth:  settings.View.Width,
		ViewHeight: settings.View.Height,
		Audio:      audio.New(audio.Kind(settings.Audio), os.Stdout, logger),
		Logger:     logger,
	})
	if err := c.Run(ctx); err != nil {
		logger.Error("game error", "err", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
