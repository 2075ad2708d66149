// Package main provides the randsum CLI, which prints a fixed-size array of
// pseudo-random integers followed by their sum.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	randsumcmd "github.com/louisbranch/randsum/internal/cmd/randsum"
)

func main() {
	cfg, err := randsumcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[RANDSUM] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := randsumcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to report: %v", err)
	}
}
