//go:build integration

package confirm_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"railbook/internal/booking/confirm"
	"railbook/pkg/testutil/containers"
)

const testTopic = "booking.confirmations"

type KafkaPublisherSuite struct {
	suite.Suite
	redpanda  *containers.RedpandaContainer
	publisher *confirm.KafkaPublisher
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	s.redpanda = containers.NewRedpandaContainer(s.T())
	s.Require().NoError(s.redpanda.CreateTopic(context.Background(), testTopic))

	publisher, err := confirm.NewKafkaPublisher([]string{s.redpanda.Broker}, testTopic)
	s.Require().NoError(err)
	s.publisher = publisher
	s.T().Cleanup(publisher.Close)
}

func (s *KafkaPublisherSuite) TestPublishDeliversKeyedRecord() {
	ctx := context.Background()

	booked := confirm.Confirmation{
		SessionID:   "sess-1",
		TripID:      "5f0c1f0e-8f2f-4f7a-9b34-2a2b1f6c9d01",
		Origin:      "Amsterdam Centraal",
		Destination: "Paris Nord",
		Class:       "first",
		Name:        "j",
		Email:       "j@example.com",
		PhoneNumber: "123-456",
		BookedAt:    time.Now().UTC(),
	}
	s.Require().NoError(s.publisher.Publish(ctx, booked))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Broker),
		kgo.ConsumeTopics(testTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().NotEmpty(records)
	record := records[0]
	s.Equal("sess-1", string(record.Key))

	var got confirm.Confirmation
	s.Require().NoError(json.Unmarshal(record.Value, &got))
	s.Equal(booked.TripID, got.TripID)
	s.Equal(booked.Email, got.Email)
	s.NotContains(string(record.Value), "payment")
}
