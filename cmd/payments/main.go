package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"payments-engine/internal/gateway"
	"payments-engine/internal/usecase"
)

func main() {
	// Define command-line flags
	filePath := flag.String("file", "", "Path to the transactions CSV file (required)")
	verbose := flag.Bool("v", false, "Log every transaction as it is applied")
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Error: the -file flag is required.")
		flag.Usage()
		os.Exit(1)
	}

	logger := buildLogger(*verbose)
	defer logger.Sync()

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the source (the outermost layer)
	csvSource := gateway.NewCSVTransactionSource()

	// 2. Create the usecase and inject the source (the core logic layer)
	processingUseCase := usecase.NewProcessingUseCase(csvSource, logger)

	// --- Execute the Usecase ---
	summaries, err := processingUseCase.Process(context.Background(), *filePath)
	if err != nil {
		logger.Fatal("processing failed", zap.Error(err))
	}

	// --- Present the Output ---
	summaryWriter := gateway.NewCSVSummaryWriter(os.Stdout)
	if err := summaryWriter.WriteSummaries(summaries); err != nil {
		logger.Fatal("failed to write account summaries", zap.Error(err))
	}
}

// buildLogger returns a debug-level development logger when verbose is set,
// otherwise a production logger that only surfaces rejected transactions.
func buildLogger(verbose bool) *zap.Logger {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		logger, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
			os.Exit(1)
		}
		return logger
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
