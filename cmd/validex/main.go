// Command validex generates Validate methods from struct tags.
//
//	validex gen signup.go
//	validex gen --check ./examples/signup
//
// Run from go:generate without arguments to process $GOFILE:
//
//	//go:generate go run github.com/dmitrymomot/validex/cmd/validex gen
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
