// Package main runs the leads operator CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	leadscmd "github.com/Godwin-Baiju/aissol-test/internal/cmd/leads"
	"github.com/Godwin-Baiju/aissol-test/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := leadscmd.Execute(ctx, os.Args[1:], os.Stdout); err != nil {
		stop()
		config.Exitf("%v", err)
	}
}
