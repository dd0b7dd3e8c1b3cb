package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
	"github.com/codedestate/go-rental-ledger/internal/app/core/usecase"
)

const (
	// PaymentQueue 撥款指令佇列，下游的付款服務消費
	PaymentQueue = "rental.payments"
	// EventQueue 操作事件佇列，索引 / 通知服務消費
	EventQueue = "rental.events"
)

// paymentMessage 撥款指令的訊息格式
type paymentMessage struct {
	ToAddress string `json:"to_address"`
	Amount    uint64 `json:"amount"`
	Denom     string `json:"denom"`
}

// eventMessage 操作事件的訊息格式
type eventMessage struct {
	Action  string `json:"action"`
	Sender  string `json:"sender"`
	TokenID string `json:"token_id"`
}

// Publisher 把撥款指令與操作事件發布到 RabbitMQ
// 同時實作 usecase.Bank 與 usecase.Events
type Publisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

// NewPublisher 連上 RabbitMQ 並宣告兩條佇列
//
// 參數:
//
//	rabbitURL: RabbitMQ 連線字串 (amqp://...)
//
// 回傳:
//
//	*Publisher: Publisher 實例
//	error: 連線或宣告失敗
func NewPublisher(rabbitURL string) (*Publisher, error) {
	log.Printf("connecting to RabbitMQ at %s", rabbitURL)

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range []string{PaymentQueue, EventQueue} {
		_, err = ch.QueueDeclare(
			queue,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}

	log.Printf("successfully connected to RabbitMQ")
	return &Publisher{connection: conn, channel: ch}, nil
}

// publish 序列化並送出一則訊息
func (p *Publisher) publish(queue string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return p.channel.Publish(
		"",    // exchange (預設)
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         payload,
		})
}

// Send 發布一筆撥款指令 (usecase.Bank)
func (p *Publisher) Send(ctx context.Context, payment domain.Payment) error {
	return p.publish(PaymentQueue, paymentMessage{
		ToAddress: payment.ToAddress,
		Amount:    payment.Amount,
		Denom:     payment.Denom,
	})
}

// Publish 發布一則操作事件 (usecase.Events)
func (p *Publisher) Publish(ctx context.Context, event usecase.Event) error {
	return p.publish(EventQueue, eventMessage{
		Action:  event.Action,
		Sender:  event.Sender,
		TokenID: event.TokenID,
	})
}

// Close 關閉 channel 與連線
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.connection.Close()
		return err
	}
	return p.connection.Close()
}

var _ usecase.Bank = (*Publisher)(nil)
var _ usecase.Events = (*Publisher)(nil)
