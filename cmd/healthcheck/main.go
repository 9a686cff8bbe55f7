// Container healthcheck probe: hits the public card catalog endpoint and
// reports liveness through the exit code.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fizennn/Seejam-Server/internal/constants"
)

func main() {
	url := os.Getenv("SEEJAM_HEALTH_URL")
	if url == "" {
		url = "http://127.0.0.1:8080" + constants.RouteAPIPrefix + constants.RouteCards
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck:", err)
		os.Exit(1)
	}
	resp.Body.Close()

	// A 4xx still proves the server is up and routing; only server-side
	// failures count as unhealthy.
	if resp.StatusCode >= http.StatusInternalServerError {
		fmt.Fprintf(os.Stderr, "healthcheck: %s returned %d\n", url, resp.StatusCode)
		os.Exit(1)
	}
}
