package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/codedestate/go-rental-ledger/internal/app/core/domain"
	"github.com/codedestate/go-rental-ledger/internal/app/core/usecase"
	pb "github.com/codedestate/go-rental-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedRentalServiceServer
	core *usecase.CoreUseCase
}

func NewGrpcServer(core *usecase.CoreUseCase) *GrpcServer {
	return &GrpcServer{
		core: core,
	}
}

func (s *GrpcServer) Execute(ctx context.Context, req *pb.CommandRequest) (*pb.CommandResponse, error) {
	// 1. 呼叫者地址由認證攔截器填入
	caller, ok := CallerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "caller identity required")
	}

	// 2. RefID 解析 (空字串表示不去重)
	refID := uuid.Nil
	if req.RefId != "" {
		u, err := uuid.Parse(req.RefId)
		if err != nil {
			return &pb.CommandResponse{
				Success: false,
				Message: "invalid ref_id: " + err.Error(),
			}, nil
		}
		refID = u
	}

	// 3. 轉換指令種類
	op, ok := opFromProto(req.Op)
	if !ok {
		return &pb.CommandResponse{
			Success: false,
			Message: "invalid op",
		}, nil
	}

	// 4. 組裝 Domain Command
	cmd := &usecase.Command{
		RefID:           refID,
		Op:              op,
		TokenID:         req.TokenId,
		Caller:          caller,
		Now:             time.Now(),
		TokenURI:        req.TokenUri,
		Extension:       req.Extension,
		Recipient:       req.Recipient,
		Spender:         req.Spender,
		Operator:        req.Operator,
		Expires:         expirationFromProto(req.ExpiresAt),
		Listed:          req.Listed,
		Ejari:           req.Ejari,
		Denom:           req.Denom,
		PricePerDay:     req.PricePerDay,
		AutoApprove:     req.AutoApprove,
		AvailablePeriod: req.AvailablePeriod,
		RentingPeriod:   req.RentingPeriod,
		Traveler:        req.Traveler,
		Amount:          req.Amount,
	}
	if req.Funds != nil {
		cmd.Funds = domain.Funds{Denom: req.Funds.Denom, Amount: req.Funds.Amount}
	}
	if req.Landlord != nil {
		cmd.Landlord = domain.LandlordTerms{
			Denom:             req.Landlord.Denom,
			PricePerMonth:     req.Landlord.PricePerMonth,
			RefundableDeposit: req.Landlord.RefundableDeposit,
			AvailablePeriod:   req.Landlord.AvailablePeriod,
		}
	}
	if req.Tenant != nil {
		cmd.Tenant = domain.TenantTerms{
			DepositAmount: req.Tenant.DepositAmount,
			DepositDenom:  req.Tenant.DepositDenom,
			RentingPeriod: req.Tenant.RentingPeriod,
		}
	}

	// 5. 執行指令
	res, err := s.core.Execute(ctx, cmd)
	if err != nil {
		// 業務邏輯錯誤，回傳 Success=false (Soft Failure)
		return &pb.CommandResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	return &pb.CommandResponse{
		Success:  true,
		Action:   res.Action,
		Payments: paymentsToProto(res.Payments),
	}, nil
}

func (s *GrpcServer) GetToken(ctx context.Context, req *pb.GetTokenRequest) (*pb.GetTokenResponse, error) {
	rec, err := s.core.GetToken(ctx, req.TokenId)
	if err != nil {
		if err == domain.ErrTokenNotFound {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return recordToProto(rec), nil
}

func opFromProto(op pb.Op) (usecase.Op, bool) {
	switch op {
	case pb.Op_OP_MINT:
		return usecase.OpMint, true
	case pb.Op_OP_SET_METADATA:
		return usecase.OpSetMetadata, true
	case pb.Op_OP_TRANSFER:
		return usecase.OpTransfer, true
	case pb.Op_OP_BURN:
		return usecase.OpBurn, true
	case pb.Op_OP_APPROVE:
		return usecase.OpApprove, true
	case pb.Op_OP_REVOKE:
		return usecase.OpRevoke, true
	case pb.Op_OP_APPROVE_ALL:
		return usecase.OpApproveAll, true
	case pb.Op_OP_REVOKE_ALL:
		return usecase.OpRevokeAll, true
	case pb.Op_OP_LIST_LONG_TERM:
		return usecase.OpListLongTerm, true
	case pb.Op_OP_UNLIST_LONG_TERM:
		return usecase.OpUnlistLongTerm, true
	case pb.Op_OP_RESERVE_LONG_TERM:
		return usecase.OpReserveLongTerm, true
	case pb.Op_OP_REJECT_LONG_TERM:
		return usecase.OpRejectLongTerm, true
	case pb.Op_OP_CANCEL_LONG_TERM:
		return usecase.OpCancelLongTerm, true
	case pb.Op_OP_ACTIVATE_LONG_TERM:
		return usecase.OpActivateLongTerm, true
	case pb.Op_OP_DEPOSIT_LONG_TERM:
		return usecase.OpDepositLongTerm, true
	case pb.Op_OP_WITHDRAW_TO_LANDLORD:
		return usecase.OpWithdrawToLandlord, true
	case pb.Op_OP_SET_EJARI:
		return usecase.OpSetEjari, true
	case pb.Op_OP_FINALIZE_LONG_TERM:
		return usecase.OpFinalizeLongTerm, true
	case pb.Op_OP_LIST_SHORT_TERM:
		return usecase.OpListShortTerm, true
	case pb.Op_OP_UNLIST_SHORT_TERM:
		return usecase.OpUnlistShortTerm, true
	case pb.Op_OP_RESERVE_SHORT_TERM:
		return usecase.OpReserveShortTerm, true
	case pb.Op_OP_APPROVE_SHORT_TERM:
		return usecase.OpApproveShortTerm, true
	case pb.Op_OP_REJECT_SHORT_TERM:
		return usecase.OpRejectShortTerm, true
	case pb.Op_OP_CANCEL_SHORT_TERM:
		return usecase.OpCancelShortTerm, true
	case pb.Op_OP_FINALIZE_SHORT_TERM:
		return usecase.OpFinalizeShortTerm, true
	case pb.Op_OP_WITHDRAW_TO_HOST:
		return usecase.OpWithdrawToHost, true
	default:
		return 0, false
	}
}

// expirationFromProto Unix 秒轉 Expiration，0 表示永不過期
func expirationFromProto(sec int64) domain.Expiration {
	if sec == 0 {
		return domain.Expiration{}
	}
	return domain.ExpireAt(time.Unix(sec, 0))
}

func expirationToProto(e domain.Expiration) int64 {
	if e.At.IsZero() {
		return 0
	}
	return e.At.Unix()
}

func paymentsToProto(payments []domain.Payment) []*pb.Payment {
	if len(payments) == 0 {
		return nil
	}
	out := make([]*pb.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, &pb.Payment{
			ToAddress: p.ToAddress,
			Amount:    p.Amount,
			Denom:     p.Denom,
		})
	}
	return out
}

func recordToProto(rec *domain.Record) *pb.GetTokenResponse {
	resp := &pb.GetTokenResponse{
		TokenId:   rec.TokenID,
		Owner:     rec.Owner,
		TokenUri:  rec.TokenURI,
		Extension: rec.Extension,
		LongTerm: &pb.LongTermRental{
			Listed:         rec.LongTerm.Listed,
			Reserved:       rec.LongTerm.Reserved,
			TenantAddress:  rec.LongTerm.TenantAddress,
			RentingFlag:    rec.LongTerm.RentingFlag,
			EjariFlag:      uint32(rec.LongTerm.EjariFlag),
			DepositTotal:   rec.LongTerm.DepositTotal,
			WithdrawnTotal: rec.LongTerm.WithdrawnTotal,
		},
		ShortTerm: &pb.ShortTermRental{
			Listed:          rec.ShortTerm.Listed,
			PricePerDay:     rec.ShortTerm.PricePerDay,
			Denom:           rec.ShortTerm.Denom,
			AutoApprove:     rec.ShortTerm.AutoApprove,
			AvailablePeriod: rec.ShortTerm.AvailablePeriod,
			DepositTotal:    rec.ShortTerm.DepositTotal,
			WithdrawnTotal:  rec.ShortTerm.WithdrawnTotal,
		},
	}
	for _, a := range rec.Approvals {
		resp.Approvals = append(resp.Approvals, &pb.Approval{
			Spender:   a.Spender,
			ExpiresAt: expirationToProto(a.Expires),
		})
	}
	if rec.LongTerm.Landlord != nil {
		resp.LongTerm.Landlord = &pb.LandlordTerms{
			Denom:             rec.LongTerm.Landlord.Denom,
			PricePerMonth:     rec.LongTerm.Landlord.PricePerMonth,
			RefundableDeposit: rec.LongTerm.Landlord.RefundableDeposit,
			AvailablePeriod:   rec.LongTerm.Landlord.AvailablePeriod,
		}
	}
	if rec.LongTerm.Tenant != nil {
		resp.LongTerm.Tenant = &pb.TenantTerms{
			DepositAmount: rec.LongTerm.Tenant.DepositAmount,
			DepositDenom:  rec.LongTerm.Tenant.DepositDenom,
			RentingPeriod: rec.LongTerm.Tenant.RentingPeriod,
		}
	}
	for _, b := range rec.ShortTerm.Bookings {
		resp.ShortTerm.Bookings = append(resp.ShortTerm.Bookings, &pb.Booking{
			Address:       b.Address,
			RentingPeriod: b.RentingPeriod,
			DepositAmount: b.DepositAmount,
			Approved:      b.Approved,
		})
	}
	return resp
}
