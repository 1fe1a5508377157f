package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/arrkit/arr"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of every configured instance",
	Long:  `Query the system status and health of every enabled instance concurrently.`,
	RunE:  runStatus,
}

// instanceStatus is the outcome of querying one instance
type instanceStatus struct {
	App    string            `json:"app"`
	URL    string            `json:"url"`
	Status *arr.SystemStatus `json:"status,omitempty"`
	Health []arr.HealthCheck `json:"health,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// enabledClients returns the base clients of every configured instance
func enabledClients() []*arr.Client {
	var clients []*arr.Client
	if sonarrClient != nil {
		clients = append(clients, sonarrClient.Client)
	}
	if radarrClient != nil {
		clients = append(clients, radarrClient.Client)
	}
	if readarrClient != nil {
		clients = append(clients, readarrClient.Client)
	}
	if lidarrClient != nil {
		clients = append(clients, lidarrClient.Client)
	}
	return clients
}

// queryStatus fetches status and health of every client. A failing instance
// is reported in its result rather than failing the others.
func queryStatus(ctx context.Context, clients []*arr.Client) []instanceStatus {
	results := make([]instanceStatus, len(clients))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, client := range clients {
		i, client := i, client
		g.Go(func() error {
			result := instanceStatus{App: client.API().Name, URL: client.Host()}

			status, err := client.GetSystemStatus(ctx)
			if err != nil {
				client.Logger().Debug().Err(err).Msg("Status check failed")
				result.Error = err.Error()
				results[i] = result
				return nil
			}
			result.Status = status

			health, err := client.GetHealth(ctx)
			if err != nil {
				client.Logger().Warn().Err(err).Msg("Failed to get health")
			}
			result.Health = health

			results[i] = result
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func runStatus(cmd *cobra.Command, args []string) error {
	clients := enabledClients()
	if len(clients) == 0 {
		return fmt.Errorf("no instances enabled in config")
	}

	results := queryStatus(cmd.Context(), clients)

	t := &table{
		headers: []string{"App", "URL", "Version", "Health", "Status"},
		data:    results,
	}
	var failed int
	for _, r := range results {
		if r.Error != "" {
			failed++
			t.append(r.App, r.URL, "-", "-", "✗ "+r.Error)
			continue
		}
		health := "OK"
		if len(r.Health) > 0 {
			health = fmt.Sprintf("%d issues", len(r.Health))
		}
		t.append(r.App, r.URL, r.Status.Version, health, "✓ Connected")
	}

	if err := render(os.Stdout, outputFormat, t); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d instances unreachable", failed, len(results))
	}
	return nil
}
