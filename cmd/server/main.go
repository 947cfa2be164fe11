// Command server runs the English news Q&A web application: the HTML pages,
// the JSON API and the event streams.
//
// Configuration comes from CONFIG_PATH (YAML), an optional .env file and the
// environment. See internal/config.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/newsqa-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
