package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/SOCIUM-CR/youtube-extract-mcp-server/internal/cli"
)

func main() {
	// charger un éventuel fichier .env avant de lire l'environnement ;
	// son absence n'est pas une erreur
	_ = godotenv.Load()

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "erreur :", err)
		}
		os.Exit(1)
	}
}
