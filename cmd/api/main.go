package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/config"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/handler"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/knowledge"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/model/profile"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/ai"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/conversation"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/message"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/response"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/store"
)

const welcomeMessage = "Hi! I'm Mohd Uwaish. I'm here to answer any questions about my skills, experience, or projects. What would you like to know?"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Load and validate the portfolio dataset
	data := profile.Seed()
	if err := profile.Validate(data); err != nil {
		log.Fatalf("invalid portfolio data: %v", err)
	}
	kb := knowledge.New(data)

	// Initialize optional context persistence
	var contextStore store.ContextStore
	if cfg.Storage.Enabled {
		sqliteStore, err := store.NewSQLite(cfg.Storage.Path)
		if err != nil {
			log.Printf("warning: failed to open context store at %s: %v", cfg.Storage.Path, err)
			log.Println("continuing without conversation persistence")
		} else {
			defer sqliteStore.Close()
			contextStore = sqliteStore
			log.Printf("context store ready at %s", cfg.Storage.Path)
		}
	} else {
		log.Println("CHAT_DB_PATH not set, conversation persistence disabled")
	}

	conversations := conversation.NewManager(cfg.Conversation, contextStore, welcomeMessage)

	// Initialize AI service
	var aiService *ai.Service
	if cfg.AI.Enabled() {
		aiService, err = ai.NewService(ctx, kb, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing with structured responses only")
		} else {
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, using structured responses only")
	}

	generator := response.NewGenerator(kb, aiService, conversations)
	messages := message.NewHandler(cfg.Security, conversations, generator)

	router := handler.NewRouter(messages, cfg.Server.AllowedOrigins)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio assistant backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
