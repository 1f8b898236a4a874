package eventsink

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/wovenflow/runtime/internal/runner"
)

// KafkaConfig configures a KafkaSink's producer.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaSink publishes the execution event stream onto a Kafka topic for an
// external service to consume, grounded on aipilotbyjd-linkflow-ai's
// sarama.AsyncProducer wiring.
type KafkaSink struct {
	producer sarama.AsyncProducer
	topic    string
	errs     chan error
}

// NewKafkaSink dials brokers and returns a sink publishing to topic.
func NewKafkaSink(cfg KafkaConfig) (*KafkaSink, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Retry.Max = 5
	saramaCfg.Producer.Return.Successes = false
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewAsyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("kafka sink: %w", err)
	}

	s := &KafkaSink{producer: producer, topic: cfg.Topic, errs: make(chan error, 64)}
	go s.drainErrors()
	return s, nil
}

func (s *KafkaSink) drainErrors() {
	for perr := range s.producer.Errors() {
		select {
		case s.errs <- perr.Err:
		default:
		}
	}
}

// Publish satisfies eventsink.Sink. Sends are fire-and-forget against the
// async producer; an earlier delivery failure (the oldest of up to 64
// buffered ones; later failures are dropped while the buffer is full) is
// surfaced on the next call so persistent broker outages aren't silently
// swallowed forever.
func (s *KafkaSink) Publish(event runner.Event) error {
	select {
	case err := <-s.errs:
		return fmt.Errorf("kafka sink: previous delivery failed: %w", err)
	default:
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	s.producer.Input() <- &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.ExecutionID),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("eventType"), Value: []byte(event.Type)},
		},
	}
	return nil
}

// Close flushes and closes the underlying producer.
func (s *KafkaSink) Close() error {
	if err := s.producer.Close(); err != nil {
		return fmt.Errorf("kafka sink: close: %w", err)
	}
	close(s.errs)
	return nil
}
