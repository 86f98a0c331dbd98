// Package influx ships analysis results to InfluxDB for dashboarding.
// Writes are fire-and-forget; an unreachable server only costs a log line.
package influx

import (
	"context"
	"errors"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/influxdata/influxdb-client-go/v2/domain"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/rotorbench/rotorbench/pkg/core"
)

const (
	BucketAnalyses  = "build_analyses"
	BucketDischarge = "discharge_curves"
)

// DefaultBucketNames are the InfluxDB buckets written by the analyzer.
var DefaultBucketNames = []string{
	BucketAnalyses,
	BucketDischarge,
}

// Manager handles InfluxDB connections and writes.
type Manager struct {
	Client      influxdb2.Client
	Writers     map[string]influxdb2_api.WriteAPI
	IsValid     bool
	BucketNames []string
	Logger      zerolog.Logger
}

// NewManager creates a new InfluxDB manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		Writers:     make(map[string]influxdb2_api.WriteAPI),
		IsValid:     false,
		BucketNames: DefaultBucketNames,
		Logger:      log,
	}
}

// Connect establishes a connection to InfluxDB.
func (m *Manager) Connect() error {
	if !viper.GetBool("influx.enabled") {
		return errors.New("influx.enabled is false")
	}

	m.Client = influxdb2.NewClientWithOptions(
		fmt.Sprintf(
			"%s://%s:%s",
			viper.GetString("influx.protocol"),
			viper.GetString("influx.host"),
			viper.GetString("influx.port"),
		),
		viper.GetString("influx.token"),
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)

	running, err := m.Client.Ping(context.Background())
	if err != nil || !running {
		m.IsValid = false
		m.Logger.Warn().Err(err).Msg("InfluxDB unreachable, analysis export disabled")
		return nil
	}
	m.IsValid = true

	if err := m.setupOrganizationAndBuckets(); err != nil {
		return err
	}
	m.CreateWriters()
	m.Logger.Info().Msg("InfluxDB client initialized")

	return nil
}

func (m *Manager) setupOrganizationAndBuckets() error {
	ctx := context.Background()
	orgName := viper.GetString("influx.org")

	// ensure org exists
	_, err := m.Client.OrganizationsAPI().FindOrganizationByName(ctx, orgName)
	if err != nil {
		m.Logger.Info().Str("org", orgName).Msg("Organization not found, creating")
		_, err = m.Client.OrganizationsAPI().CreateOrganizationWithName(ctx, orgName)
		if err != nil {
			m.Logger.Error().Err(err).Str("org", orgName).Msg("Error creating organization")
			return err
		}
	}

	influxOrg, err := m.Client.OrganizationsAPI().FindOrganizationByName(ctx, orgName)
	if err != nil {
		m.Logger.Error().Err(err).Str("org", orgName).Msg("Error getting organization")
		return err
	}

	// ensure buckets exist with 90 day retention
	for _, bucket := range m.BucketNames {
		_, err = m.Client.BucketsAPI().FindBucketByName(ctx, bucket)
		if err != nil {
			m.Logger.Info().Str("bucket", bucket).Msg("Bucket not found, creating")

			rule := domain.RetentionRuleTypeExpire
			_, err = m.Client.BucketsAPI().CreateBucketWithName(ctx, influxOrg, bucket, domain.RetentionRule{
				Type:         &rule,
				EverySeconds: 60 * 60 * 24 * 90,
			})
			if err != nil {
				m.Logger.Error().Err(err).Str("bucket", bucket).Msg("Error creating bucket")
				return err
			}
		}
	}

	return nil
}

// CreateWriters creates write APIs for all configured buckets.
func (m *Manager) CreateWriters() {
	orgName := viper.GetString("influx.org")
	for _, bucket := range m.BucketNames {
		m.Writers[bucket] = m.Client.WriteAPI(orgName, bucket)

		errorsCh := m.Writers[bucket].Errors()
		go func(bucketName string, errorsCh <-chan error) {
			for writeErr := range errorsCh {
				m.Logger.Error().Err(writeErr).Str("bucket", bucketName).
					Msg("Error sending data to InfluxDB")
			}
		}(bucket, errorsCh)
	}

	m.Logger.Debug().Msg("InfluxDB writers initialized")
}

// WritePoint writes a point to the given bucket.
func (m *Manager) WritePoint(bucket string, point *influxdb2_write.Point) error {
	if !m.IsValid {
		return nil
	}
	writer, ok := m.Writers[bucket]
	if !ok {
		return fmt.Errorf("influxDB bucket '%s' not registered", bucket)
	}
	writer.WritePoint(point)
	return nil
}

// WriteAnalysis exports an analysis scorecard and its discharge curve.
func (m *Manager) WriteAnalysis(buildName string, a core.BuildAnalysis) error {
	if !m.IsValid {
		return nil
	}

	now := time.Now()

	point := influxdb2.NewPointWithMeasurement("build_analysis").
		AddTag("build", buildName).
		AddTag("weight_rating", string(a.Performance.Rating.Weight)).
		AddTag("thrust_rating", string(a.Performance.Rating.ThrustToWeight)).
		AddField("total_weight", a.Performance.TotalWeight).
		AddField("max_thrust", a.Performance.MaxThrust).
		AddField("twr", a.Performance.ThrustToWeightRatio).
		AddField("power_draw", a.Performance.PowerDraw).
		AddField("flight_time", a.FlightSimulation.EstimatedFlightTime).
		AddField("hover_time", a.FlightSimulation.HoverTime).
		AddField("max_speed", a.FlightSimulation.MaxSpeed).
		AddField("total_cost", a.TotalCost).
		AddField("is_valid", a.IsValid).
		SetTime(now)
	if err := m.WritePoint(BucketAnalyses, point); err != nil {
		return err
	}

	for _, sample := range a.FlightSimulation.DischargeData {
		point := influxdb2.NewPointWithMeasurement("discharge").
			AddTag("build", buildName).
			AddField("time_min", sample.Time).
			AddField("voltage", sample.Voltage).
			AddField("remaining_mah", sample.RemainingCapacity).
			AddField("current_draw", sample.CurrentDraw).
			SetTime(now.Add(time.Duration(sample.Time * float64(time.Minute))))
		if err := m.WritePoint(BucketDischarge, point); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes pending writes and shuts the client down.
func (m *Manager) Close() {
	if m.Client == nil {
		return
	}
	for _, writer := range m.Writers {
		writer.Flush()
	}
	m.Client.Close()
}
