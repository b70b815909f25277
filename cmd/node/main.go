package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"github.com/goodnatureofminers/powledger/internal/chain"
	"github.com/goodnatureofminers/powledger/internal/clock"
	"github.com/goodnatureofminers/powledger/internal/metrics"
	"github.com/goodnatureofminers/powledger/internal/miner"
	"github.com/goodnatureofminers/powledger/internal/model"
	"github.com/goodnatureofminers/powledger/internal/node"
	"github.com/goodnatureofminers/powledger/internal/pow"
	"github.com/goodnatureofminers/powledger/internal/transport"
	"github.com/goodnatureofminers/powledger/internal/validator"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type config struct {
	NodeName       string        `long:"node-name" env:"POWLEDGER_NODE_NAME" description:"node name used in metric labels"`
	ListenAddr     string        `long:"listen-addr" env:"POWLEDGER_LISTEN_ADDR" description:"peer listen address (host:port)" default:"127.0.0.1:7000"`
	APIAddr        string        `long:"api-addr" env:"POWLEDGER_API_ADDR" description:"gRPC API address" default:":8000"`
	RestAddr       string        `long:"rest-addr" env:"POWLEDGER_REST_ADDR" description:"REST API address" default:":8001"`
	MetricsAddr    string        `long:"metrics-addr" env:"POWLEDGER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	MineInterval   time.Duration `long:"mine-interval" env:"POWLEDGER_MINE_INTERVAL" description:"pause after each mined block" default:"1s"`
	YieldEvery     uint64        `long:"yield-every" env:"POWLEDGER_YIELD_EVERY" description:"nonce attempts between scheduler yields" default:"1024"`
	NoMine         bool          `long:"no-mine" env:"POWLEDGER_NO_MINE" description:"relay and admit peer blocks without mining"`
	InboundRPS     int           `long:"inbound-rps" env:"POWLEDGER_INBOUND_RPS" description:"blocks accepted per second per peer, negative for unlimited" default:"100"`
	WriteTimeout   time.Duration `long:"write-timeout" env:"POWLEDGER_WRITE_TIMEOUT" description:"peer write deadline, negative to disable" default:"10s"`
	MaxMessageSize int           `long:"max-message-size" env:"POWLEDGER_MAX_MESSAGE_SIZE" description:"largest accepted peer message in bytes" default:"1048576"`
	VerifyHash     bool          `long:"verify-hash" env:"POWLEDGER_VERIFY_HASH" description:"recompute block digests on admission"`
	BlockBuffer    int           `long:"block-buffer" env:"POWLEDGER_BLOCK_BUFFER" description:"capacity of the block-ready channel" default:"16"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("node failed", zap.Error(err))
	}
	logger.Info("node stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	genesisTime, err := clock.EpochSeconds(time.Now())
	if err != nil {
		return fmt.Errorf("genesis timestamp: %w", err)
	}
	genesis := pow.Seal(model.Genesis(genesisTime), pow.Hash)
	ledger := chain.NewLedger(genesis)

	var opts []validator.Option
	if cfg.VerifyHash {
		opts = append(opts, validator.WithHashVerification(pow.Hash))
	}
	gate, err := validator.New(ledger, metrics.NewValidator(cfg.NodeName), opts...)
	if err != nil {
		return fmt.Errorf("init validator: %w", err)
	}

	blockReady := make(chan model.Block, cfg.BlockBuffer)
	peers, err := node.New(gate, metrics.NewNode(cfg.NodeName), blockReady, logger.Named("node"), node.Config{
		InboundRPS:     cfg.InboundRPS,
		WriteTimeout:   cfg.WriteTimeout,
		MaxMessageSize: cfg.MaxMessageSize,
	})
	if err != nil {
		return fmt.Errorf("init node: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	startMetricsServer(ctx, cfg.MetricsAddr, logger)
	if err := startAPI(ctx, g, cfg, ledger, peers, logger.Named("api")); err != nil {
		return err
	}

	g.Go(func() error {
		return peers.Run(ctx, cfg.ListenAddr)
	})

	if !cfg.NoMine {
		m, err := miner.New(ledger, gate, metrics.NewMiner(cfg.NodeName), blockReady, logger.Named("miner"), miner.Config{
			Interval:   cfg.MineInterval,
			YieldEvery: cfg.YieldEvery,
		})
		if err != nil {
			return fmt.Errorf("init miner: %w", err)
		}
		g.Go(func() error {
			return m.Run(ctx)
		})
	}

	logger.Info("node started",
		zap.String("listen_addr", cfg.ListenAddr),
		zap.Bool("mining", !cfg.NoMine),
		zap.String("genesis", genesis.Hash),
	)
	return g.Wait()
}

func startAPI(ctx context.Context, g *errgroup.Group, cfg config, ledger *chain.Ledger, peers *node.Node, logger *zap.Logger) error {
	grpcZap.ReplaceGrpcLoggerV2(logger)
	interceptors := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(interceptors...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)
	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewExplorerHandler(ledger, peers))

	socket, err := net.Listen("tcp", cfg.APIAddr)
	if err != nil {
		return fmt.Errorf("listen api %s: %w", cfg.APIAddr, err)
	}
	g.Go(func() error {
		if err := grpcServer.Serve(socket); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve grpc: %w", err)
		}
		return nil
	})
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, cfg.APIAddr, dialOpts); err != nil {
		return fmt.Errorf("register explorer gateway: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/v1/chain", transport.NewChainHandler(ledger, logger))
	mux.Handle("/v1/chain/", transport.NewChainHandler(ledger, logger))
	mux.Handle("/", gw)

	srv := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	g.Go(func() error {
		logger.Info("starting HTTP server", zap.String("addr", cfg.RestAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
