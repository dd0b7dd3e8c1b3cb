package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/codedestate/go-rental-ledger/internal/app/core/adapter/in/grpc"
	cache_adapter "github.com/codedestate/go-rental-ledger/internal/app/core/adapter/out/cache"
	memory_adapter "github.com/codedestate/go-rental-ledger/internal/app/core/adapter/out/memory"
	mongo_adapter "github.com/codedestate/go-rental-ledger/internal/app/core/adapter/out/mongo"
	mysql_adapter "github.com/codedestate/go-rental-ledger/internal/app/core/adapter/out/mysql"
	rabbitmq_adapter "github.com/codedestate/go-rental-ledger/internal/app/core/adapter/out/rabbitmq"
	"github.com/codedestate/go-rental-ledger/internal/app/core/usecase"
	"github.com/codedestate/go-rental-ledger/pkg/auth"
	"github.com/codedestate/go-rental-ledger/pkg/mysql"
	"github.com/codedestate/go-rental-ledger/pkg/wal"
	pb "github.com/codedestate/go-rental-ledger/proto"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Registry struct {
		// Backend 儲存後端: memory | mysql | mongo
		Backend string `yaml:"backend"`
		WALPath string `yaml:"wal_path"`
	} `yaml:"registry"`
	MySQL mysql.Config `yaml:"mysql"`
	Mongo struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"mongo"`
	Cache struct {
		Enabled       bool   `yaml:"enabled"`
		MemcachedHost string `yaml:"memcached_host"`
	} `yaml:"cache"`
	RabbitMQ struct {
		Enabled bool   `yaml:"enabled"`
		URL     string `yaml:"url"`
	} `yaml:"rabbitmq"`
	Auth struct {
		Secret   string        `yaml:"secret"`
		TokenTTL time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化 Token Registry (Driven Adapter)
	var (
		registry  usecase.TokenRegistry
		operators usecase.OperatorRegistry
	)
	switch cfg.Registry.Backend {
	case "memory":
		walFile, err := wal.NewWAL(cfg.Registry.WALPath)
		if err != nil {
			log.Fatalf("Failed to init WAL: %v", err)
		}
		defer walFile.Close()

		store, err := memory_adapter.NewMutexStore(walFile)
		if err != nil {
			log.Fatalf("Failed to init memory store: %v", err)
		}
		registry = store
		operators = store
		log.Printf("Using in-memory registry with WAL at %s", cfg.Registry.WALPath)
	case "mysql":
		dbClient, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		defer dbClient.Close()

		store := mysql_adapter.NewMySQLStore(dbClient)
		if err := store.Migrate(); err != nil {
			log.Fatalf("Failed to migrate MySQL schema: %v", err)
		}
		registry = store
		operators = store
		log.Println("Using MySQL registry")
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect(context.Background())

		store := mongo_adapter.NewMongoStore(mongoClient.Database(cfg.Mongo.Database))
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to ensure MongoDB indexes: %v", err)
		}
		registry = store
		operators = store
		log.Println("Using MongoDB registry")
	default:
		log.Fatalf("Invalid registry backend: %s", cfg.Registry.Backend)
	}

	// 3. [Optional] 掛上兩層快取 (local ccache + memcached)
	if cfg.Cache.Enabled {
		registry = cache_adapter.NewCachedRegistry(registry, cfg.Cache.MemcachedHost)
		log.Println("Token registry cache enabled")
	}

	// 4. 初始化撥款與事件出口
	var (
		bank   usecase.Bank
		events usecase.Events
	)
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq_adapter.NewPublisher(cfg.RabbitMQ.URL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		bank = publisher
		events = publisher
		log.Println("Connected to RabbitMQ successfully")
	} else {
		fallback := memory_adapter.NewLogPublisher()
		bank = fallback
		events = fallback
	}

	// 5. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(registry, operators, bank, events)

	// 6. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(coreUseCase)
	authManager := auth.NewManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	// 7. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	s := grpc.NewServer(grpc.UnaryInterceptor(grpc_adapter.AuthInterceptor(authManager)))
	pb.RegisterRentalServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// Graceful Shutdown
	go func() {
		log.Printf("Starting gRPC server on %s", cfg.Server.Addr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	s.GracefulStop()
	log.Println("Server exited")
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":50051"
	}
	if cfg.Registry.Backend == "" {
		cfg.Registry.Backend = "memory"
	}
	if cfg.Registry.WALPath == "" {
		cfg.Registry.WALPath = "wal.log"
	}
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 100
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 10
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "rental"
	}
	if cfg.Auth.Secret == "" {
		log.Fatalf("auth.secret must be set in config")
	}
	return cfg
}
