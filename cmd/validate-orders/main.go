package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/cleanpos/pkg/validate"
)

// CLI-приложение для проверки заказов перед публикацией в Kafka.
// Валидные заказы печатаются в stdout (компактный JSON, по одному в строке),
// ошибки по строкам — в stderr. Код выхода 1, если есть хотя бы один невалидный заказ.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads JSONL from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orderValidator := validate.NewOrderValidator()

	var (
		report validate.Report
		err    error
	)
	if *inputPath == "" {
		report, err = validate.Stream(ctx, orderValidator, os.Stdin, os.Stdout)
	} else {
		report, err = validate.File(ctx, orderValidator, *inputPath, validate.InputFormat(*formatStr), os.Stdout)
	}

	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "line %d: %v\n", f.Line, f.Err)
	}
	if err != nil && report.Invalid == 0 {
		fmt.Fprintf(os.Stderr, "validation: %v\n", err)
		os.Exit(1)
	}
	if report.Invalid > 0 {
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", report)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", report)
}
