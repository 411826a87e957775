package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portal-chat/auth"
	"portal-chat/contract"
	"portal-chat/errors"
	"portal-chat/infrastructure/ws"
	"portal-chat/internal"
	"portal-chat/moderation"
	"portal-chat/observability"
	"portal-chat/repositories"
	"portal-chat/runtime"
	"portal-chat/runtime/workers"
	"portal-chat/services"
	"portal-chat/sink"

	env "github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const debugInspectorPort = 8081

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle and
// centralizes error reporting so that every defer runs before exiting.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	charReplacement, _ := internal.CharacterRune(config.CharReplacement)
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Portal directory (sqlite)
	sqlDB, err := repositories.OpenSQLite(config.SqlitePath, config.SqliteDebug)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		logger.Info("Closing SQLite...")
		_ = repositories.CloseSQLite(sqlDB)
	}()
	if err := repositories.Migrate(sqlDB); err != nil {
		return exitRuntime, err
	}

	// 3. Audit log (badger) and transcript index (bluge)
	db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", debugInspectorPort, endpoint))
		database.StartDebugServer(db, debugInspectorPort, endpoint, AuditMapper)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	auditRepository := repositories.NewAuditRepository(db, logger)
	transcriptIndex := repositories.NewTranscriptIndex(blugeWriter, logger)
	secondaries := []contract.AuditLog{transcriptIndex}
	probes := []workers.Probe{{Name: "sqlite", Check: func(ctx context.Context) error {
		conn, err := sqlDB.DB()
		if err != nil {
			return err
		}
		return conn.PingContext(ctx)
	}}}

	// 4. Optional owner notifications (rabbitmq)
	if config.AmqpURL != "" {
		amqpConn, err := amqp091.Dial(config.AmqpURL)
		if err != nil {
			return exitRuntime, fmt.Errorf("amqp dial failed: %w", err)
		}
		defer func() {
			logger.Info("Closing AMQP connection...")
			_ = amqpConn.Close()
		}()
		channel, err := amqpConn.Channel()
		if err != nil {
			return exitRuntime, fmt.Errorf("amqp channel failed: %w", err)
		}
		if err := sink.DeclareExchange(channel, config.AmqpExchange); err != nil {
			return exitRuntime, err
		}
		secondaries = append(secondaries, sink.NewAMQPNotifier(channel, config.AmqpExchange, logger))
		probes = append(probes, workers.Probe{Name: "amqp", Check: func(context.Context) error {
			if amqpConn.IsClosed() || channel.IsClosed() {
				return amqp091.ErrClosed
			}
			return nil
		}})
		logger.Info("Owner notifications enabled", "exchange", config.AmqpExchange)
	}
	auditLog := sink.NewFanout(logger, auditRepository, config.SinkTimeout, secondaries...)

	// 5. Presence store, in memory unless redis is configured
	directory := runtime.NewDirectory(logger)
	var connections contract.ConnectionStore = runtime.NewMemoryConnections(logger)
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		defer func() {
			logger.Info("Closing Redis client...")
			_ = rdb.Close()
		}()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return exitRuntime, fmt.Errorf("redis unreachable at %s: %w", config.RedisAddr, err)
		}
		instance, err := instanceID(config)
		if err != nil {
			return exitConfig, err
		}
		redisConnections := runtime.NewRedisConnections(rdb, config.RedisPrefix, instance, logger)
		if _, err := redisConnections.Reset(ctx); err != nil {
			return exitRuntime, err
		}
		connections = redisConnections
		probes = append(probes, workers.Probe{Name: "redis", Check: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
		logger.Info("Connections stored in redis", "addr", config.RedisAddr, "prefix", config.RedisPrefix, "instance", instance)
	}
	store := runtime.NewStore(directory, connections)

	// 6. Moderation
	moderator, err := buildModerator(config, charReplacement, logger)
	if err != nil {
		return exitConfig, err
	}

	// 7. Services
	orchestrator := runtime.NewOrchestrator(logger, store, runtime.NewAuditRelay(auditLog, logger),
		repositories.NewPortalRepository(sqlDB), repositories.NewContactRepository(sqlDB))
	chatService := services.NewChatService(logger, orchestrator, &moderator, auditRepository, transcriptIndex, config.HistoryLimit)
	tokens := auth.NewTokenIssuer(config.JwtSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(repositories.NewOwnerRepository(sqlDB), tokens)

	monitor, err := observability.NewMonitor(logger, chatService)
	if err != nil {
		return exitRuntime, fmt.Errorf("monitor init failed: %w", err)
	}
	healthServer := health.NewServer()

	// 8. Background workers
	sup := workers.NewSupervisor(logger).Add(
		workers.NewStatsWorker(logger, monitor, config.MetricInterval),
		workers.NewHealthWorker(logger, healthServer, "", config.MetricInterval, config.SinkTimeout, probes...),
	)
	go sup.Run(ctx)

	errChan := make(chan error, 2)

	// 9. Websocket hub
	hub := ws.NewHub(logger, chatService, tokens, monitor, ws.Settings{
		WriteWait:      config.WriteWait,
		PongWait:       config.PongWait,
		PingPeriod:     config.PingPeriod,
		MaxMessageSize: config.MaxMessageSize,
		SendBufferSize: config.SendBufferSize,
	})
	gin.SetMode(gin.ReleaseMode)
	router, err := ws.NewRouter(logger, hub, authService, tokens, monitor, config.TrustedProxies)
	if err != nil {
		return exitConfig, err
	}
	httpServer := ws.NewHTTPServer(fmt.Sprintf("%s:%d", config.Host, config.WSPort), router)
	go func() {
		logger.Info("Starting websocket server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("websocket server error: %w", err)
		}
	}()

	// 10. gRPC health endpoint
	address := fmt.Sprintf("%s:%d", config.Host, config.GRPCPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)))
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	go func() {
		logger.Info("Starting gRPC server", "address", address)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 11. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 12. Graceful shutdown: stop accepting, then close sockets so that every
	// connection runs its leave path before the stores close.
	logger.Info("Shutting down gracefully...")
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	hub.CloseAll()
	waitForHub(shutdownCtx, hub)
	grpcServer.GracefulStop()
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// buildModerator merges the word files of CENSORED_DIR with CENSORED_WORDS.
// Nothing configured means nothing censored.
func buildModerator(config internal.Config, char rune, logger *slog.Logger) (moderation.Moderator, error) {
	var fsys fs.FS
	if config.CensoredDir != "" {
		fsys = os.DirFS(config.CensoredDir)
	}
	data, err := moderation.LoadWords(fsys, ".", config.CensoredWords)
	if err != nil && !errors.Is(err, errors.ErrEmptyWords) {
		return moderation.Moderator{}, fmt.Errorf("cannot load censored words: %w", err)
	}
	var words []string
	if data != nil {
		words = data.Words
		logger.Info("Censored words loaded", "count", len(words), "languages", data.Languages)
	}
	return moderation.NewModerator(words, char, logger)
}

// instanceID names the redis keyspace of this process. Restarting with the
// same id flushes what the previous run left.
func instanceID(config internal.Config) (string, error) {
	if config.InstanceID != "" {
		return config.InstanceID, nil
	}
	host, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("INSTANCE_ID unset and no host name: %w", err)
	}
	return host, nil
}

// waitForHub gives the read pumps a chance to run their leave path.
func waitForHub(ctx context.Context, hub *ws.Hub) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for hub.Size() > 0 {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
