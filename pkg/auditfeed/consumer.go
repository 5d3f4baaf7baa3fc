package auditfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"hospital-manager-api/config"
	"hospital-manager-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

// Consumer tails the entity-change exchange and writes one human-readable
// audit line per event.
type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger) *Consumer {
	return &Consumer{
		cfg: cfg,
		log: logger,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("audit feed consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	var err error
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range []string{
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
	} {
		if err = c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting audit feed worker")

	defer func() {
		c.log.Info("audit feed worker gracefully stopped")
	}()

	for {
		select {
		case msg := <-c.chDelivery:
			if err := c.delivery(msg); err != nil {
				c.log.Error("audit feed message error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

// Action reconstructs the change verb from the routing key and entity.
func Action(routingKey, entity string) string {
	var verb string
	switch routingKey {
	case http.MethodPost:
		verb = "Created"
	case http.MethodPut:
		verb = "Updated"
	case http.MethodDelete:
		verb = "Deleted"
	default:
		verb = "Changed"
	}

	if entity == "" {
		entity = "entity"
	}

	return entity + verb
}

func (c *Consumer) delivery(msg amqp091.Delivery) error {
	var ev mq.Event
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	fmt.Fprintf(os.Stdout,
		"Action=%s EntityID=%s EventID=%s TS=%s\n",
		Action(msg.RoutingKey, ev.Entity),
		ev.EntityID,
		ev.Id,
		ev.TS.Format("2006-01-02T15:04:05Z07:00"),
	)

	return nil
}
