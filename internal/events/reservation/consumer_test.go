package reservation_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	dashboardMocks "hotel/internal/domains/dashboard/service/mocks"
	"hotel/internal/events/reservation"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"
)

func TestConsumer_Handle(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		setupMock func(dashboard *dashboardMocks.MockDashboard)
	}{
		{
			name:  "confirmed booking refreshes the dashboard",
			value: `{"type":"reservation.confirmed","reservation_id":"res-1"}`,
			setupMock: func(dashboard *dashboardMocks.MockDashboard) {
				dashboard.EXPECT().Warm(gomock.Any()).Return(nil)
			},
		},
		{
			name:  "refresh failure is swallowed",
			value: `{"type":"reservation.confirmed","reservation_id":"res-1"}`,
			setupMock: func(dashboard *dashboardMocks.MockDashboard) {
				dashboard.EXPECT().Warm(gomock.Any()).Return(errors.New("db down"))
			},
		},
		{
			name:      "unknown type",
			value:     `{"type":"reservation.unknown"}`,
			setupMock: func(*dashboardMocks.MockDashboard) {},
		},
		{
			name:      "malformed payload",
			value:     `not-json`,
			setupMock: func(*dashboardMocks.MockDashboard) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dashboard := dashboardMocks.NewMockDashboard(ctrl)
			tt.setupMock(dashboard)

			consumer := reservation.New(kafkaMocks.NewMockClient(ctrl), dashboard, &config.Config{})
			consumer.Handle(context.Background(), kafkaGo.Message{Key: []byte("res-1"), Value: []byte(tt.value)})
		})
	}
}

func TestConsumer_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.ConsumerGroup = "hotel-dashboard"
	cfg.Kafka.Topics.Reservation = "hotel.reservations"

	client.EXPECT().Consume(gomock.Any(), "hotel-dashboard", "hotel.reservations", gomock.Any())

	reservation.New(client, dashboardMocks.NewMockDashboard(ctrl), cfg).Start(context.Background())
}
