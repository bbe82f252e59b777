package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/cleanpos/config"
	"github.com/Gunvolt24/cleanpos/internal/app"
)

func main() {
	// локальные переопределения; отсутствие файла — не ошибка
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "service stopped with error: %v", err)
		cleanup()
		os.Exit(1)
	}
}
