// Package telemetry records planner run metrics to Prometheus (via a
// Pushgateway) and InfluxDB, repurposing the teacher's internal/o11y
// client wiring (originally built for LLM call duration) for planner
// expansions, wall-clock time, and plan cost instead.
package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// RunRecord is one planner invocation's outcome, as reported to Reporter.Record.
type RunRecord struct {
	ScenarioName string
	Heuristic    string
	Status       string
	Expansions   int
	Duration     time.Duration
	PlanCost     float64
}

// Reporter pushes RunRecords to a Prometheus Pushgateway and writes them as
// InfluxDB points. Both backends are optional: a Reporter constructed with
// an empty address for either skips that backend silently, so unit tests
// and offline use never need live infrastructure.
type Reporter struct {
	mu sync.Mutex

	pusher     *push.Pusher
	expansions *prometheus.GaugeVec
	duration   *prometheus.GaugeVec
	planCost   *prometheus.GaugeVec

	influx influxdb2.Client
	bucket string
	org    string
}

// NewReporter builds a Reporter. pushgatewayURL and influxURL may be empty
// to disable the corresponding backend.
func NewReporter(pushgatewayURL, influxURL, influxToken, influxOrg, influxBucket string) *Reporter {
	r := &Reporter{
		expansions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "goap_planner_expansions",
			Help: "Number of A* node expansions in the most recent run",
		}, []string{"scenario", "heuristic"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "goap_planner_duration_seconds",
			Help: "Wall-clock duration of the most recent planner run",
		}, []string{"scenario", "heuristic"}),
		planCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "goap_planner_plan_cost",
			Help: "Total cost of the most recently found plan",
		}, []string{"scenario", "heuristic"}),
	}

	if pushgatewayURL != "" {
		r.pusher = push.New(pushgatewayURL, "goap_planner").
			Collector(r.expansions).
			Collector(r.duration).
			Collector(r.planCost)
	}

	if influxURL != "" {
		r.influx = influxdb2.NewClient(influxURL, influxToken)
		r.org = influxOrg
		r.bucket = influxBucket
	}

	return r
}

// Record pushes the given run's metrics to whichever backends are
// configured. Errors from either backend are returned joined; callers
// typically log and continue rather than fail the run over telemetry.
func (r *Reporter) Record(ctx context.Context, rec RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.expansions.WithLabelValues(rec.ScenarioName, rec.Heuristic).Set(float64(rec.Expansions))
	r.duration.WithLabelValues(rec.ScenarioName, rec.Heuristic).Set(rec.Duration.Seconds())
	r.planCost.WithLabelValues(rec.ScenarioName, rec.Heuristic).Set(rec.PlanCost)

	var pushErr, writeErr error

	if r.pusher != nil {
		pushErr = r.pusher.Push()
	}

	if r.influx != nil {
		point := write.NewPoint("planner_run",
			map[string]string{"scenario": rec.ScenarioName, "heuristic": rec.Heuristic, "status": rec.Status},
			map[string]interface{}{
				"expansions": rec.Expansions,
				"duration_s": rec.Duration.Seconds(),
				"plan_cost":  rec.PlanCost,
			},
			time.Now(),
		)
		writeAPI := r.influx.WriteAPIBlocking(r.org, r.bucket)
		writeErr = writeAPI.WritePoint(ctx, point)
	}

	switch {
	case pushErr != nil && writeErr != nil:
		return fmt.Errorf("pushgateway: %w; influxdb: %v", pushErr, writeErr)
	case pushErr != nil:
		return fmt.Errorf("pushgateway: %w", pushErr)
	case writeErr != nil:
		return fmt.Errorf("influxdb: %w", writeErr)
	default:
		return nil
	}
}

// Close releases the InfluxDB client, if one was configured.
func (r *Reporter) Close() {
	if r.influx != nil {
		r.influx.Close()
	}
}
