// Package reservation reacts to reservation events published on Kafka.
package reservation

import (
	"context"

	"hotel/config"
	"hotel/infras/kafka"
	dashboardService "hotel/internal/domains/dashboard/service"
	"hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/model/dto"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Consumer struct {
	kafka     kafka.Client
	dashboard dashboardService.Dashboard
	cfg       *config.Config
}

func New(kafka kafka.Client, dashboard dashboardService.Dashboard, cfg *config.Config) *Consumer {
	return &Consumer{
		kafka:     kafka,
		dashboard: dashboard,
		cfg:       cfg,
	}
}

// Start blocks until ctx is done.
func (c *Consumer) Start(ctx context.Context) {
	if !c.cfg.Kafka.Enable {
		log.Info().Msg("kafka disabled, reservation consumer not started")

		return
	}

	c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.Reservation, c.Handle)
}

func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) {
	event, err := kafka.DecodeKafkaMessage[dto.ConfirmedEvent](message)
	if err != nil {
		return
	}

	switch event.Type {
	case model.EventConfirmed:
		if err := c.dashboard.Warm(ctx); err != nil {
			log.Error().Err(err).Str("reservation_id", event.ReservationID).Msg("failed to refresh dashboard stats")

			return
		}

		log.Info().Str("reservation_id", event.ReservationID).Msg("dashboard stats refreshed")
	default:
		log.Debug().Str("type", event.Type).Msg("ignoring reservation event")
	}
}
