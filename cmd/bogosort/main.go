package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logs := newLogFlags()
	root := NewRootCommand(logs)
	root.AddCommand(NewBenchCommand(logs))

	err := root.ExecuteContext(ctx)
	_ = zap.L().Sync()
	if err != nil {
		os.Exit(1)
	}
}
