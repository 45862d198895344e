package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var healthTimeout time.Duration

var healthCmd = &cobra.Command{
	Use:   "health URL",
	Short: "Probe the /healthz endpoint of a running API",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().DurationVar(&healthTimeout, "timeout", 2*time.Second, "Probe timeout")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	client := &http.Client{Timeout: healthTimeout}
	ok, latency, err := probe(client, args[0])
	if err != nil {
		log.Error().Err(err).Str("url", args[0]).Msg("probe failed")
		return err
	}
	if !ok {
		return fmt.Errorf("api down (%dms)", latency)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "up %dms\n", latency)
	return nil
}

func probe(client *http.Client, base string) (bool, int, error) {
	start := time.Now()
	resp, err := client.Get(strings.TrimRight(base, "/") + "/healthz")
	if err != nil {
		return false, 0, err
	}
	defer resp.Body.Close()
	latency := int(time.Since(start) / time.Millisecond)
	return resp.StatusCode >= 200 && resp.StatusCode < 300, latency, nil
}
