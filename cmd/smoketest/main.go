// Command smoketest verifies that a deployed instance answers its health
// check. It is run against a fresh deployment before traffic is shifted over.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fitweek/fitweek/internal/logging"
	"github.com/fitweek/fitweek/internal/testhelpers"
)

const (
	readyTimeout  = 30 * time.Second
	retryInterval = time.Second
)

func waitForHealthy(ctx context.Context, url string) error {
	client := &http.Client{Timeout: 5 * time.Second} //nolint:mnd // per-request timeout

	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"/api/healthy", nil)
		if err != nil {
			return fmt.Errorf("build health check request: %w", err)
		}
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("server not healthy within %s: %w", readyTimeout, ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	hostname := os.Args[1]
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	start := time.Now()
	if err := waitForHealthy(ctx, url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke test failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "smoke test passed",
		slog.Duration("duration", time.Since(start)))
}
