package actions

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Cleaner lists every workflow run for a repository, asks for confirmation
// and deletes them one by one.
type Cleaner struct {
	client *Client
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

func NewCleaner(client *Client, in io.Reader, out io.Writer, logger *slog.Logger) *Cleaner {
	return &Cleaner{
		client: client,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run purges all workflow runs. With assumeYes false it prompts on out and
// reads a y/n answer from in; anything but "y" cancels.
func (c *Cleaner) Run(ctx context.Context, assumeYes bool) error {
	runs, err := c.client.ListAllRuns(ctx)
	if err != nil {
		return fmt.Errorf("list workflow runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(c.out, "no workflow runs found")
		return nil
	}

	fmt.Fprintf(c.out, "found %d workflow runs\n", len(runs))

	if !assumeYes {
		ok, err := c.confirm(len(runs))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(c.out, "cancelled")
			return nil
		}
	}

	deleted := 0
	for i, run := range runs {
		fmt.Fprintf(c.out, "[%d/%d] deleting %s (id %d)\n", i+1, len(runs), run.Name, run.ID)

		if err := c.client.DeleteRun(ctx, run.ID); err != nil {
			c.logger.Error("delete failed", "run_id", run.ID, "error", err)
		} else {
			deleted++
		}

		if i < len(runs)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.client.Pacing()):
			}
		}
	}

	fmt.Fprintf(c.out, "done: deleted %d/%d\n", deleted, len(runs))
	return nil
}

func (c *Cleaner) confirm(count int) (bool, error) {
	fmt.Fprintf(c.out, "delete all %d workflow runs? (y/n): ", count)

	reader := bufio.NewReader(c.in)
	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
