package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"licboard/internal/api"
	"licboard/internal/config"
	"licboard/internal/session"
)

// One-shot console: fetch the dashboard summary from the configured backend
// and print it as JSON. Session state persists in SESSION_FILE when set.
func main() {
	cfg := config.Load()

	var sess session.Store
	if cfg.Session.File != "" {
		sess = session.NewFileStore(cfg.Session.File)
	} else {
		sess = session.NewMemoryStore(os.Getenv("API_TOKEN"), os.Getenv("API_USER_ID"))
	}

	client := api.New(cfg.API, sess)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout())
	defer cancel()

	summary := client.Dashboard.Summary(ctx)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatal().Err(err).Msg("failed to print summary")
	}
}
