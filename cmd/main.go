package main

import (
	"context"
	_ "embed"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tradepost/auth"
	"tradepost/grpc/server"
	"tradepost/internal"
	"tradepost/moderation"
	pb "tradepost/proto/market"
	"tradepost/repositories"
	"tradepost/runtime"
	"tradepost/runtime/workers"
	"tradepost/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Words whose presence in a chat message points to an off-platform
// payment or contact attempt.
//
//go:embed banned_words.txt
var bannedWords string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the server lifecycle, so
// deferred cleanup executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Presence, pipeline & repositories
	registry := runtime.NewRegistry()
	hub := runtime.NewHub(log, config.BufferSize)
	uow := repositories.NewUnitOfWork(db)
	products := repositories.NewProductRepository(db)
	users := repositories.NewUserRepository(db)
	chats := repositories.NewChatRepository(db)
	messages := repositories.NewMessageRepository(db, log, config.LimitMessages)
	notifications := repositories.NewNotificationRepository(db)

	// 4. Moderation
	words := strings.Split(strings.TrimSpace(bannedWords), "\n")
	log.Info(fmt.Sprintf("%d banned words loaded", len(words)))
	moderator, err := moderation.NewModerator(words, []rune(config.ModerationMask)[0])
	if err != nil {
		return fmt.Errorf("moderator build failed: %w", err)
	}

	// 5. Services
	notifier := services.NewNotificationService(log, notifications, hub)
	chatService := services.NewChatService(log, registry, hub, uow,
		chats, messages, users, notifier, &moderator)
	negotiation := services.NewNegotiationService(log, uow,
		products, users, chats, chatService, notifier, hub)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Supervised delivery pipeline
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewDelivery(log, registry, hub.Events()))
	go sup.Run(ctx)

	if config.DebugPort != 0 {
		internal.StartDebugServer(log, db, config.DebugPort)
	}

	// 8. gRPC Server Setup
	tokens := auth.NewTokenService(config.JWTSecret, config.AuthTokenDuration)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(tokens.UnaryInterceptor),
		grpc.StreamInterceptor(tokens.StreamInterceptor),
	)
	marketServer := server.NewMarketServer(log, registry,
		negotiation, chatService, notifier, config.ConnectionBufferSize)
	pb.RegisterMarketServiceServer(s, marketServer)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 9. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 10. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
