package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
)

// KafkaMatchProducerConfig holds Kafka producer configuration for
// publishing match-found events.
type KafkaMatchProducerConfig struct {
	Brokers        []string
	Topic          string
	MaxRetries     int
	RetryBackoff   time.Duration
	FlushFrequency time.Duration
	FlushMessages  int
	RequiredAcks   sarama.RequiredAcks
	Compression    sarama.CompressionCodec
}

// KafkaMatchProducer publishes match-found events to Kafka as soon as a
// scan worker finds one, so a downstream consumer can react without
// polling the match store.
type KafkaMatchProducer struct {
	producer sarama.SyncProducer
	topic    string
	mu       sync.RWMutex
	closed   bool
}

// matchEvent is the wire format for a match-found event.
type matchEvent struct {
	SeedIndex uint64    `json:"seed_index"`
	Seed      string    `json:"seed"`
	Detail    string    `json:"detail"`
	FoundAt   time.Time `json:"found_at"`
}

// NewKafkaMatchProducer creates a new Kafka match producer.
func NewKafkaMatchProducer(config KafkaMatchProducerConfig) (*KafkaMatchProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.Retry.Max = config.MaxRetries
	saramaConfig.Producer.Retry.Backoff = config.RetryBackoff
	saramaConfig.Producer.Flush.Frequency = config.FlushFrequency
	saramaConfig.Producer.Flush.Messages = config.FlushMessages
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.Compression

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaMatchProducer{producer: producer, topic: config.Topic}, nil
}

// PublishMatch sends a match-found event to Kafka, keyed by seed so that
// all events for the same seed land on the same partition.
func (p *KafkaMatchProducer) PublishMatch(ctx context.Context, match *Match) error {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return fmt.Errorf("search: producer is closed")
	}

	data, err := json.Marshal(matchEvent{
		SeedIndex: match.SeedIndex,
		Seed:      match.Seed,
		Detail:    match.Detail,
		FoundAt:   match.FoundAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal match event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(match.Seed),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}

	_, _, err = p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send match event to Kafka: %w", err)
	}
	return nil
}

// Close shuts down the producer.
func (p *KafkaMatchProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.producer.Close()
}

// EnsureTopic creates the match-events topic if it doesn't already exist.
func EnsureTopic(brokers []string, topic string, partitions int32, replicationFactor int16) error {
	config := sarama.NewConfig()
	config.Version = sarama.V2_0_0_0

	admin, err := sarama.NewClusterAdmin(brokers, config)
	if err != nil {
		return fmt.Errorf("failed to create cluster admin: %w", err)
	}
	defer admin.Close()

	err = admin.CreateTopic(topic, &sarama.TopicDetail{
		NumPartitions:     partitions,
		ReplicationFactor: replicationFactor,
	}, false)
	if err != nil {
		if topicErr, ok := err.(*sarama.TopicError); ok && topicErr.Err == sarama.ErrTopicAlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}
