package kafkat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/saharshred/renu-biome/internal/entity"
	"github.com/saharshred/renu-biome/pkg/logger"
	"github.com/saharshred/renu-biome/pkg/metric"

	"github.com/segmentio/kafka-go"
)

// OrderPublisher announces submitted purchase orders on a Kafka topic for
// downstream fulfillment systems. The message key is the order UID so all
// events for one order land on the same partition.
type OrderPublisher struct {
	writer *kafka.Writer
	metric metric.Publisher
	log    logger.Logger
}

func NewOrderPublisher(
	writer *kafka.Writer,
	metric metric.Publisher,
	log logger.Logger,
) *OrderPublisher {
	return &OrderPublisher{
		writer: writer,
		metric: metric,
		log:    log,
	}
}

func (p *OrderPublisher) PublishSubmitted(
	ctx context.Context,
	order *entity.PurchaseOrder,
) error {
	const op = "transport.kafka.order_publisher.PublishSubmitted"

	payload, err := json.Marshal(order)
	if err != nil {
		p.metric.PublishFailed(p.writer.Topic, "marshal")
		return fmt.Errorf("%s: marshal order: %w", op, err)
	}

	start := time.Now()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderUID.String()),
		Value: payload,
		Time:  order.SubmittedAt,
	})
	p.metric.ObserveDuration(p.writer.Topic, time.Since(start))

	if err != nil {
		p.metric.PublishFailed(p.writer.Topic, "write")
		return fmt.Errorf("%s: write message: %w", op, err)
	}

	p.metric.Published(p.writer.Topic)
	p.log.Ctx(ctx).Infow("order event published",
		"topic", p.writer.Topic,
		"order_uid", order.OrderUID.String(),
		"po_number", order.PONumber,
	)

	return nil
}

func (p *OrderPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("transport.kafka.order_publisher.Close: %w", err)
	}
	return nil
}
