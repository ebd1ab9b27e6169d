package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"news_pusher/internal/actions"
)

// actions-cleanup purges all GitHub Actions workflow runs for a repository.
// Token, owner and repo come from the environment (or a local .env file).
func main() {
	assumeYes := flag.Bool("yes", false, "skip the confirmation prompt")
	pacing := flag.Duration("pacing", time.Second, "pause between delete calls")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	_ = godotenv.Load()

	token := os.Getenv("GITHUB_TOKEN")
	owner := os.Getenv("GITHUB_OWNER")
	repo := os.Getenv("GITHUB_REPO")
	if token == "" || owner == "" || repo == "" {
		logger.Error("GITHUB_TOKEN, GITHUB_OWNER and GITHUB_REPO must be set")
		os.Exit(1)
	}

	client := actions.NewClient(actions.Config{
		Token:  token,
		Owner:  owner,
		Repo:   repo,
		Pacing: *pacing,
	})

	cleaner := actions.NewCleaner(client, os.Stdin, os.Stdout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	if err := cleaner.Run(ctx, *assumeYes); err != nil {
		logger.Error("cleanup failed", "error", err)
		os.Exit(1)
	}
}
