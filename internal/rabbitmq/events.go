// Package rabbitmq публикует события каталога в RabbitMQ для внешних
// потребителей (push-уведомления, аналитика). Публикация выполняется
// по принципу best-effort: ошибка публикации логируется сервисом,
// но не проваливает исходный запрос.
package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// EventsExchange — topic-exchange для событий каталога.
const EventsExchange = "catalog.events"

// Ключи маршрутизации публикуемых событий.
const (
	KeyAuthRegister    = "auth.register"
	KeyAuthLogin       = "auth.login"
	KeyAuthRefresh     = "auth.refresh"
	KeyBusinessCreated = "business.created"
	KeyBusinessUpdated = "business.updated"
	KeyBusinessRemoved = "business.removed"
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductRemoved  = "product.removed"
)

// Event — сообщение о выполненной операции.
type Event struct {
	Actor      string    `json:"actor"`       // Телефон пользователя
	Operation  string    `json:"operation"`   // Ключ маршрутизации
	EntityID   string    `json:"entity_id"`   // ID затронутой записи
	OccurredAt time.Time `json:"occurred_at"` // Момент операции
}

// Connect подключается к RabbitMQ с повторными попытками.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// SetupChannel открывает канал и объявляет exchange событий.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ch, nil
}

// Publisher публикует события в exchange каталога.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создает Publisher поверх открытого канала.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// Publish сериализует событие в JSON и публикует его с заданным ключом.
func (p *Publisher) Publish(routingKey string, event Event) error {
	const op = "rabbitmq.Publish"
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = p.ch.Publish(
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
