package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ericogr/novel-tactics/internal/constants"
)

func main() {
	base := constants.DefaultHealthcheckAddress
	if v := os.Getenv("NOVEL_TACTICS_HEALTHCHECK_URL"); v != "" {
		base = strings.TrimRight(v, "/")
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(base + constants.RouteAPIPrefix + constants.RouteVersion)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
