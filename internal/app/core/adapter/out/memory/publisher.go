package memory

import (
	"context"
	"log"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
	"github.com/codedestate/go-rental-ledger/internal/app/core/usecase"
)

// LogPublisher 沒接 RabbitMQ 時的替代實作，把撥款與事件寫到 log
// 撥款本來就是 fire-and-forget，核心只負責決定金額與對象
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Send 記錄一筆撥款指令 (usecase.Bank)
func (p *LogPublisher) Send(ctx context.Context, payment domain.Payment) error {
	log.Printf("payment: to=%s amount=%d denom=%s", payment.ToAddress, payment.Amount, payment.Denom)
	return nil
}

// Publish 記錄一則操作事件 (usecase.Events)
func (p *LogPublisher) Publish(ctx context.Context, event usecase.Event) error {
	log.Printf("event: action=%s sender=%s token=%s", event.Action, event.Sender, event.TokenID)
	return nil
}

var _ usecase.Bank = (*LogPublisher)(nil)
var _ usecase.Events = (*LogPublisher)(nil)
