package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dukkan-app/dukkan/internal/client/cli"
	"github.com/dukkan-app/dukkan/internal/client/closeday"
	"github.com/dukkan-app/dukkan/internal/client/invoices"
	"github.com/dukkan-app/dukkan/internal/client/netstate"
	"github.com/dukkan-app/dukkan/internal/client/stock"
	"github.com/dukkan-app/dukkan/internal/client/storage/boltdb"
	"github.com/dukkan-app/dukkan/internal/client/sync"
	"github.com/dukkan-app/dukkan/internal/remote/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "dukkan-pos.db", "Path to local database")
	storePath := flag.String("store", "dukkan-store.db", "Path to document store database")
	offline := flag.Bool("offline", false, "Start in offline mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Локальное хранилище: очередь операций, зеркало фактур, счётчики
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Удалённое хранилище документов
	store, err := sqlite.New(ctx, *storePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open document store: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close document store", "error", err)
		}
	}()

	net := netstate.NewMonitor(!*offline)

	invoiceService := invoices.NewService(store, boltStorage, boltStorage, boltStorage, net, logger)
	stockService := stock.NewService(store, boltStorage, net, logger)
	closeDayService := closeday.NewService(store, boltStorage, boltStorage, net, logger)
	syncService := sync.NewService(boltStorage, sync.NewExecutor(store, logger), invoiceService, net, logger)

	// Поднимаем локальный счётчик до удалённого, чтобы не выдать
	// повторный номер после переустановки клиента
	if err := invoiceService.ReseedCounter(ctx); err != nil {
		logger.Warn("counter reseed failed", "error", err)
	}

	c := cli.New(invoiceService, stockService, closeDayService, syncService, net)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Dukkan POS Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
