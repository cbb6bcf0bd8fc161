package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"geotrack/internal/config"
	"geotrack/internal/domain"
	"geotrack/internal/service"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTIngest subscribes to the device telemetry topic and feeds decoded
// position updates through the same path as the HTTP API. Malformed payloads
// are logged and dropped, never nacked into a redelivery loop.
type MQTTIngest struct {
	client    mqtt.Client
	cfg       config.MqttConfig
	locations service.LocationService
	logger    *slog.Logger
}

func NewMQTTIngest(cfg config.MqttConfig, locations service.LocationService, logger *slog.Logger) *MQTTIngest {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOrderMatters(false)

	return &MQTTIngest{
		client:    mqtt.NewClient(opts),
		cfg:       cfg,
		locations: locations,
		logger:    logger,
	}
}

func (m *MQTTIngest) Run(ctx context.Context) error {
	if token := m.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	m.logger.Info("mqttIngest STARTED",
		slog.String("broker", m.cfg.BrokerURL),
		slog.String("topic", m.cfg.Topic),
	)

	token := m.client.Subscribe(m.cfg.Topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		m.handle(ctx, msg)
	})
	if token.Wait() && token.Error() != nil {
		m.client.Disconnect(250)
		return token.Error()
	}

	<-ctx.Done()
	m.client.Disconnect(250)
	m.logger.Info("mqttIngest STOPPED", slog.String("reason", ctx.Err().Error()))
	return nil
}

func (m *MQTTIngest) handle(ctx context.Context, msg mqtt.Message) {
	var req domain.LocationUpdateRequest
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		m.logger.Warn("mqtt payload decode failed",
			slog.String("topic", msg.Topic()),
			slog.Any("error", err),
		)
		return
	}

	hctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := m.locations.Update(hctx, req); err != nil {
		m.logger.Warn("mqtt location update rejected",
			slog.String("topic", msg.Topic()),
			slog.String("entity_id", req.EntityID),
			slog.Any("error", err),
		)
	}
}
