package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/codedestate/go-rental-ledger/pkg/auth"
	grpc_pool "github.com/codedestate/go-rental-ledger/pkg/grpc"
	pb "github.com/codedestate/go-rental-ledger/proto"
)

// 簡單的煙霧測試客戶端: 鑄造 -> 刊登短租 -> 預約 -> 查詢
func main() {
	target := flag.String("target", "localhost:50051", "server address")
	secret := flag.String("secret", "local-dev-secret", "auth secret, must match server config")
	flag.Parse()

	manager := auth.NewManager(*secret, 0)

	ownerToken, err := manager.Issue("owner-address")
	if err != nil {
		log.Fatalf("failed to issue owner token: %v", err)
	}
	travelerToken, err := manager.Issue("traveler-address")
	if err != nil {
		log.Fatalf("failed to issue traveler token: %v", err)
	}

	// 連線池掛上攔截器，從 context 取出 token 注入 metadata
	pool := grpc_pool.NewPool(grpc_pool.WithInterceptor(bearerInterceptor()))
	defer pool.Close()

	conn, err := pool.GetConnection(*target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewRentalServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ownerCtx := withToken(ctx, ownerToken)
	travelerCtx := withToken(ctx, travelerToken)

	tokenID := "villa-001"

	// 1. 鑄造
	execute(ownerCtx, c, "mint", &pb.CommandRequest{
		RefId:    uuid.New().String(),
		Op:       pb.Op_OP_MINT,
		TokenId:  tokenID,
		TokenUri: "ipfs://villa-001",
	})

	// 2. 刊登短租
	execute(ownerCtx, c, "list short-term", &pb.CommandRequest{
		RefId:           uuid.New().String(),
		Op:              pb.Op_OP_LIST_SHORT_TERM,
		TokenId:         tokenID,
		Denom:           "unibi",
		PricePerDay:     100,
		AutoApprove:     true,
		AvailablePeriod: []string{"2026/01/01", "2026/12/31"},
	})

	// 3. 預約兩晚
	execute(travelerCtx, c, "reserve short-term", &pb.CommandRequest{
		RefId:         uuid.New().String(),
		Op:            pb.Op_OP_RESERVE_SHORT_TERM,
		TokenId:       tokenID,
		RentingPeriod: []string{"2026/03/01", "2026/03/03"},
		Funds:         &pb.Funds{Denom: "unibi", Amount: 200},
	})

	// 4. 查詢最終狀態
	resp, err := c.GetToken(ownerCtx, &pb.GetTokenRequest{TokenId: tokenID})
	if err != nil {
		log.Fatalf("GetToken failed: %v", err)
	}
	log.Printf("token=%s owner=%s bookings=%d deposit_total=%d",
		resp.TokenId, resp.Owner, len(resp.ShortTerm.Bookings), resp.ShortTerm.DepositTotal)
}

type tokenKey struct{}

func withToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// bearerInterceptor 將 context 內的 token 轉為 authorization metadata
func bearerInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if token, ok := ctx.Value(tokenKey{}).(string); ok {
			ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func execute(ctx context.Context, c pb.RentalServiceClient, name string, req *pb.CommandRequest) {
	resp, err := c.Execute(ctx, req)
	if err != nil {
		log.Fatalf("%s failed: %v", name, err)
	}
	if !resp.Success {
		log.Fatalf("%s rejected: %s", name, resp.Message)
	}
	log.Printf("%s ok: action=%s payments=%d", name, resp.Action, len(resp.Payments))
}
