package commands

import (
	"github.com/tomatolog/goap/internal/config"
	"github.com/tomatolog/goap/internal/heuristic"
	"github.com/tomatolog/goap/internal/telemetry"
)

// scenarioHeuristic converts a config default into a heuristic.Name.
func scenarioHeuristic(name string) heuristic.Name {
	if name == "" {
		return heuristic.Zero
	}
	return heuristic.Name(name)
}

// newReporter builds a telemetry.Reporter from cfg, or nil if no backend is
// configured, so commands can skip telemetry entirely without branching on
// empty strings everywhere.
func newReporter(cfg *config.Config) *telemetry.Reporter {
	t := cfg.Telemetry
	if t.PushgatewayURL == "" && t.InfluxURL == "" {
		return nil
	}
	return telemetry.NewReporter(t.PushgatewayURL, t.InfluxURL, t.InfluxToken, t.InfluxOrg, t.InfluxBucket)
}
