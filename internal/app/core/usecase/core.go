package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
)

// ErrUnknownOp 未知的指令種類
var ErrUnknownOp = errors.New("unknown command op")

// CoreUseCase 是核心業務邏輯層 (Dispatcher)
//
// 每條指令: 載入 Record -> 執行一個引擎操作 -> 成功才持久化 ->
// 轉交撥款指令、發布事件。失敗時 Record 保持載入當下的狀態，不持久化。
// 同一時間只處理一條指令，Record 之間不需要跨鍵協調。
type CoreUseCase struct {
	mu        sync.Mutex
	registry  TokenRegistry
	operators OperatorRegistry
	guard     *domain.Guard
	bank      Bank
	events    Events
	// 已處理過的指令 (成功才記錄，失敗允許重試)
	processed map[uuid.UUID]*Result
}

func NewCoreUseCase(registry TokenRegistry, operators OperatorRegistry, bank Bank, events Events) *CoreUseCase {
	return &CoreUseCase{
		registry:  registry,
		operators: operators,
		guard:     domain.NewGuard(operators),
		bank:      bank,
		events:    events,
		processed: make(map[uuid.UUID]*Result),
	}
}

// Execute 處理一條指令
// 冪等: 帶相同 RefID 的重送直接回傳先前的結果，不重複執行、不重複撥款
func (c *CoreUseCase) Execute(ctx context.Context, cmd *Command) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cmd.RefID != uuid.Nil {
		if prior, ok := c.processed[cmd.RefID]; ok {
			return prior, nil
		}
	}

	res, err := c.dispatch(ctx, cmd)
	if err != nil {
		return nil, err
	}

	// 撥款與事件是 fire-and-forget，送達失敗不回滾狀態
	for _, payment := range res.Payments {
		if err := c.bank.Send(ctx, payment); err != nil {
			log.Printf("bank send failed: to=%s amount=%d denom=%s err=%v",
				payment.ToAddress, payment.Amount, payment.Denom, err)
		}
	}
	if err := c.events.Publish(ctx, Event{Action: res.Action, Sender: cmd.Caller, TokenID: cmd.TokenID}); err != nil {
		log.Printf("event publish failed: action=%s token=%s err=%v", res.Action, cmd.TokenID, err)
	}

	if cmd.RefID != uuid.Nil {
		c.processed[cmd.RefID] = res
	}
	return res, nil
}

// GetToken 查詢單一 Record (隔離副本)
func (c *CoreUseCase) GetToken(ctx context.Context, tokenID string) (*domain.Record, error) {
	return c.registry.Load(ctx, tokenID)
}

// dispatch 依指令種類路由
func (c *CoreUseCase) dispatch(ctx context.Context, cmd *Command) (*Result, error) {
	switch cmd.Op {
	case OpMint:
		rec := domain.NewRecord(cmd.TokenID, cmd.Caller, cmd.TokenURI, cmd.Extension)
		if err := c.registry.Insert(ctx, rec); err != nil {
			return nil, err
		}
		return &Result{Action: cmd.Op.action()}, nil

	case OpApproveAll:
		// 建立當下就過期的授權視為無效資料
		if cmd.Expires.IsExpired(cmd.Now) {
			return nil, domain.ErrExpired
		}
		if err := c.operators.PutOperatorGrant(ctx, cmd.Caller, cmd.Operator, cmd.Expires); err != nil {
			return nil, err
		}
		return &Result{Action: cmd.Op.action()}, nil

	case OpRevokeAll:
		if err := c.operators.DeleteOperatorGrant(ctx, cmd.Caller, cmd.Operator); err != nil {
			return nil, err
		}
		return &Result{Action: cmd.Op.action()}, nil
	}

	// 其餘操作都是 load -> mutate -> save
	rec, err := c.registry.Load(ctx, cmd.TokenID)
	if err != nil {
		return nil, err
	}

	payments, err := c.apply(ctx, rec, cmd)
	if err != nil {
		return nil, err
	}

	if cmd.Op == OpBurn {
		if err := c.registry.Remove(ctx, cmd.TokenID); err != nil {
			return nil, err
		}
	} else {
		if err := c.registry.Save(ctx, rec); err != nil {
			return nil, err
		}
	}
	return &Result{Action: cmd.Op.action(), Payments: payments}, nil
}

// apply 在載入的 Record 上執行單一引擎操作
func (c *CoreUseCase) apply(ctx context.Context, rec *domain.Record, cmd *Command) ([]domain.Payment, error) {
	g := c.guard
	switch cmd.Op {
	case OpSetMetadata:
		return nil, rec.SetMetadata(ctx, g, cmd.Caller, cmd.Now, cmd.TokenURI)
	case OpTransfer:
		return nil, rec.Transfer(ctx, g, cmd.Caller, cmd.Now, cmd.Recipient)
	case OpBurn:
		return nil, g.CanSend(ctx, rec, cmd.Caller, cmd.Now)
	case OpApprove:
		return nil, rec.UpdateApproval(ctx, g, cmd.Caller, cmd.Now, cmd.Spender, cmd.Expires, true)
	case OpRevoke:
		return nil, rec.UpdateApproval(ctx, g, cmd.Caller, cmd.Now, cmd.Spender, domain.Expiration{}, false)

	case OpListLongTerm:
		return nil, rec.ListLongTerm(ctx, g, cmd.Caller, cmd.Now, cmd.Listed, cmd.Landlord)
	case OpUnlistLongTerm:
		return nil, rec.UnlistLongTerm(ctx, g, cmd.Caller, cmd.Now)
	case OpReserveLongTerm:
		return nil, rec.ReserveLongTerm(cmd.Caller, cmd.Tenant)
	case OpRejectLongTerm:
		return nil, rec.RejectLongTerm(ctx, g, cmd.Caller, cmd.Now)
	case OpCancelLongTerm:
		return nil, rec.CancelLongTerm(cmd.Caller)
	case OpActivateLongTerm:
		return nil, rec.ActivateLongTerm(ctx, g, cmd.Caller, cmd.Now)
	case OpDepositLongTerm:
		return nil, rec.DepositLongTerm(ctx, g, cmd.Caller, cmd.Now, cmd.Funds)
	case OpWithdrawToLandlord:
		return rec.WithdrawToLandlord(ctx, g, cmd.Caller, cmd.Now, cmd.Amount, cmd.Denom)
	case OpSetEjari:
		return nil, rec.SetEjari(ctx, g, cmd.Caller, cmd.Now, cmd.Ejari)
	case OpFinalizeLongTerm:
		return nil, rec.FinalizeLongTerm(ctx, g, cmd.Caller, cmd.Now)

	case OpListShortTerm:
		return nil, rec.ListShortTerm(ctx, g, cmd.Caller, cmd.Now, cmd.Denom, cmd.PricePerDay, cmd.AutoApprove, cmd.AvailablePeriod)
	case OpUnlistShortTerm:
		return nil, rec.UnlistShortTerm(ctx, g, cmd.Caller, cmd.Now)
	case OpReserveShortTerm:
		return rec.ReserveShortTerm(cmd.Caller, cmd.RentingPeriod, cmd.Funds)
	case OpApproveShortTerm:
		return rec.ApproveShortTerm(ctx, g, cmd.Caller, cmd.Now, cmd.Traveler, cmd.RentingPeriod)
	case OpRejectShortTerm:
		return nil, rec.RejectShortTerm(ctx, g, cmd.Caller, cmd.Now, cmd.Traveler, cmd.RentingPeriod)
	case OpCancelShortTerm:
		return rec.CancelShortTerm(cmd.Caller, cmd.RentingPeriod)
	case OpFinalizeShortTerm:
		return nil, rec.FinalizeShortTerm(ctx, g, cmd.Caller, cmd.Now, cmd.Traveler, cmd.RentingPeriod)
	case OpWithdrawToHost:
		return rec.WithdrawToHost(ctx, g, cmd.Caller, cmd.Now, cmd.Amount, cmd.Denom)

	default:
		return nil, ErrUnknownOp
	}
}
