// Package main starts the chatserv services daemon and handles termination.
//
// The process hosts the authentication service over a pluggable protocol
// dialect; account state lives in SQLite so restarts keep registrations.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	chatservcmd "github.com/veldt-labs/chatserv/internal/cmd/chatserv"
)

func main() {
	cfg, err := chatservcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[CHATSERV] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := chatservcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
