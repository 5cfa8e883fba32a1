package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/vmihailenco/msgpack/v5"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
)

const recordEventsTopic = "record-events"

type RecordEventKafkaRepository struct {
	writer  *kafka.Writer
	brokers []string
}

// createTopicIfNotExists создаёт топик событий, если его ещё нет
func createTopicIfNotExists(brokers []string, topic string) error {
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	partitions, err := conn.ReadPartitions(topic)
	if err != nil && !errors.Is(err, kafka.UnknownTopicOrPartition) {
		return err
	}
	if len(partitions) > 0 {
		return nil
	}

	return conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     3,
		ReplicationFactor: 1,
	})
}

func NewRecordEventKafkaRepository(brokers []string) (repo.RecordEvent, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are not provided")
	}
	if err := createTopicIfNotExists(brokers, recordEventsTopic); err != nil {
		return nil, fmt.Errorf("ensure topic %s: %w", recordEventsTopic, err)
	}
	return &RecordEventKafkaRepository{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    recordEventsTopic,
			Balancer: &kafka.LeastBytes{},
		},
		brokers: brokers,
	}, nil
}

func (r *RecordEventKafkaRepository) PublishRecordEvent(ctx context.Context, event *entity.RecordEvent) error {
	b, err := msgpack.Marshal(event)
	if err != nil {
		return err
	}
	return r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RecordID),
		Value: b,
	})
}

func (r *RecordEventKafkaRepository) SubscribeRecordEvents(ctx context.Context) (<-chan *entity.RecordEvent, error) {
	// Каждый подписчик получает только новые события: группа уникальна,
	// чтение начинается с последнего оффсета
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     r.brokers,
		Topic:       recordEventsTopic,
		GroupID:     fmt.Sprintf("record-listener-%d", time.Now().UnixNano()),
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	ch := make(chan *entity.RecordEvent)
	go func() {
		defer close(ch)
		defer func() { _ = reader.Close() }()
		for {
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				return
			}
			var event entity.RecordEvent
			if err := msgpack.Unmarshal(m.Value, &event); err == nil {
				ch <- &event
			}
		}
	}()
	return ch, nil
}
