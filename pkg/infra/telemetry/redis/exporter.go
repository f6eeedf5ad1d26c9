package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/telemetry"
	"github.com/go-redis/redis/v8"
	"github.com/mitchellh/mapstructure"
)

const (
	ExporterName   = "redis"
	DefaultChannel = "legalguard:alerts"
	MessageType    = "safety_alert"
)

type Config struct {
	Channel string `mapstructure:"channel"`
}

// Message is the envelope published on the channel.
type Message struct {
	Type  string          `json:"type"`
	Alert json.RawMessage `json:"alert"`
}

// Exporter publishes alerts over redis pub/sub. Configured copies share the
// base client; only the channel differs.
type Exporter struct {
	client  *redis.Client
	channel string
}

func NewRedisExporter(client *redis.Client) *Exporter {
	return &Exporter{client: client, channel: DefaultChannel}
}

func (e *Exporter) Name() string {
	return ExporterName
}

func (e *Exporter) ValidateConfig(settings map[string]interface{}) error {
	var conf Config
	if err := mapstructure.Decode(settings, &conf); err != nil {
		return fmt.Errorf("invalid redis exporter config: %w", err)
	}
	if e.client == nil {
		return errors.New("redis client is not configured")
	}
	return nil
}

func (e *Exporter) WithSettings(settings map[string]interface{}) (telemetry.Exporter, error) {
	var conf Config
	if err := mapstructure.Decode(settings, &conf); err != nil {
		return nil, fmt.Errorf("invalid redis exporter config: %w", err)
	}
	if conf.Channel == "" {
		conf.Channel = DefaultChannel
	}
	return &Exporter{client: e.client, channel: conf.Channel}, nil
}

func Encode(alert *safety.Violation) ([]byte, error) {
	b, err := json.Marshal(alert)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: MessageType, Alert: b})
}

func (e *Exporter) Handle(ctx context.Context, alert *safety.Violation) error {
	if e.client == nil {
		return errors.New("redis client is not configured")
	}
	if alert == nil {
		return errors.New("nil alert")
	}
	data, err := Encode(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	return e.client.Publish(ctx, e.channel, string(data)).Err()
}

// Close is a no-op; the client belongs to the caller.
func (e *Exporter) Close() {}
