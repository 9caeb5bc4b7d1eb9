package metrics

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace                = "MAGDA/Voicer"
	httpStatusServerError    = 500
	cloudwatchTimeoutSeconds = 5
)

// MetricPutter is the subset of the CloudWatch API the client uses
type MetricPutter interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      MetricPutter
	enabled     bool
	environment string
}

// NewClient creates a new CloudWatch metrics client.
// It is only enabled in production unless force is set.
func NewClient(ctx context.Context, environment string, force bool) (*Client, error) {
	if environment != "production" && !force {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s)", environment)
		return &Client{
			enabled:     false,
			environment: environment,
		}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return &Client{enabled: false, environment: environment}, nil
	}

	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)
	return NewClientWithAPI(cloudwatch.NewFromConfig(cfg), environment), nil
}

// NewClientWithAPI builds an enabled client around an existing CloudWatch API
func NewClientWithAPI(api MetricPutter, environment string) *Client {
	return &Client{
		client:      api,
		enabled:     true,
		environment: environment,
	}
}

// Enabled reports whether metrics are sent
func (m *Client) Enabled() bool {
	return m != nil && m.enabled
}

// RecordAPIRequest records an API request metric
func (m *Client) RecordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	if !m.Enabled() {
		return
	}

	go m.recordAPIRequest(endpoint, statusCode, duration)
}

func (m *Client) recordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	ctx := context.Background()
	metricName := "APIRequests"
	if statusCode >= httpStatusServerError {
		metricName = "APIErrors"
	}

	dimensions := []types.Dimension{
		{
			Name:  aws.String("Endpoint"),
			Value: aws.String(endpoint),
		},
		{
			Name:  aws.String("Environment"),
			Value: aws.String(m.environment),
		},
	}

	if err := m.putMetric(ctx, metricName, 1, types.StandardUnitCount, dimensions); err != nil {
		log.Printf("Failed to record %s metric: %v", metricName, err)
	}

	latencyMs := float64(duration.Milliseconds())
	if err := m.putMetric(ctx, "APILatency", latencyMs, types.StandardUnitMilliseconds, dimensions); err != nil {
		log.Printf("Failed to record APILatency metric: %v", err)
	}
}

// RecordVoicing records how many chords were voiced and whether the request succeeded
func (m *Client) RecordVoicing(chordCount int, success bool) {
	if !m.Enabled() {
		return
	}

	go m.recordVoicing(chordCount, success)
}

func (m *Client) recordVoicing(chordCount int, success bool) {
	ctx := context.Background()
	dimensions := []types.Dimension{
		{
			Name:  aws.String("Success"),
			Value: aws.String(boolToString(success)),
		},
		{
			Name:  aws.String("Environment"),
			Value: aws.String(m.environment),
		},
	}

	if err := m.putMetric(ctx, "ChordsVoiced", float64(chordCount), types.StandardUnitCount, dimensions); err != nil {
		log.Printf("Failed to record ChordsVoiced metric: %v", err)
	}
}

// putMetric sends a metric to CloudWatch
func (m *Client) putMetric(
	_ context.Context,
	metricName string,
	value float64,
	unit types.StandardUnit,
	dimensions []types.Dimension,
) error {
	if !m.enabled || m.client == nil {
		return nil
	}

	timeout := time.Duration(cloudwatchTimeoutSeconds) * time.Second
	cwCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := m.client.PutMetricData(cwCtx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Value:      aws.Float64(value),
				Unit:       unit,
				Timestamp:  aws.Time(time.Now()),
				Dimensions: dimensions,
			},
		},
	})

	return err
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
