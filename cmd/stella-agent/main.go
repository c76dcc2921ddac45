package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	server "github.com/inference-gateway/adk/server"
	serverconfig "github.com/inference-gateway/adk/server/config"
	zap "go.uber.org/zap"
	option "google.golang.org/api/option"

	config "github.com/stellabot/stella/config"
	google "github.com/stellabot/stella/google"
	logging "github.com/stellabot/stella/internal/logging"
	toolbox "github.com/stellabot/stella/toolbox"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	fmt.Printf("Starting Stella agent v%s (commit: %s, built: %s)\n", version, commit, date)

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			_ = err
		}
	}()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.App.Environment),
		zap.Bool("debug", cfg.IsDebugEnabled()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("calendar_id", cfg.Google.CalendarID),
		zap.String("timezone", cfg.Google.TimeZone))

	session, err := google.NewSession(cfg.Google.CredentialsPath, cfg.Google.TokenPath, logger)
	if err != nil {
		logger.Fatal("Failed to load Google authorization", zap.Error(err))
	}
	httpClient := session.Client(ctx)

	calSvc, err := google.NewCalendarService(ctx, logger, option.WithHTTPClient(httpClient))
	if err != nil {
		logger.Fatal("Failed to create Calendar service", zap.Error(err))
	}
	gmailSvc, err := google.NewGmailService(ctx, logger, option.WithHTTPClient(httpClient))
	if err != nil {
		logger.Fatal("Failed to create Gmail service", zap.Error(err))
	}

	toolBox := server.NewDefaultToolBox()
	assistantTools := toolbox.NewAssistantTools(cfg, logger, calSvc, gmailSvc)
	assistantTools.RegisterTools(toolBox)

	serverCfg := serverconfig.Config{
		AgentName:        "Stella",
		AgentDescription: "Conversational assistant for Google Calendar and Gmail: listing, creating, updating and deleting events, searching mail, and managing drafts and labels",
		Port:             cfg.Server.Port,
		QueueConfig: serverconfig.QueueConfig{
			CleanupInterval: time.Minute * 5,
		},
		AgentConfig: serverconfig.AgentConfig{
			BaseURL:                     cfg.LLM.GatewayURL,
			Provider:                    cfg.LLM.Provider,
			APIKey:                      cfg.LLM.APIKey,
			Model:                       cfg.LLM.Model,
			Temperature:                 cfg.LLM.Temperature,
			MaxTokens:                   cfg.LLM.MaxTokens,
			MaxChatCompletionIterations: 20,
			MaxConversationHistory:      20,
			MaxRetries:                  10,
			Timeout:                     cfg.LLM.Timeout,
		},
	}
	if cfg.IsDebugEnabled() {
		serverCfg.Debug = true
	}

	agentInstance, err := server.NewAgentBuilder(logger).
		WithConfig(&serverCfg.AgentConfig).
		WithSystemPrompt(systemPrompt(cfg)).
		WithToolBox(toolBox).
		WithMaxConversationHistory(20).
		WithMaxChatCompletion(10).
		Build()
	if err != nil {
		logger.Fatal("Failed to create agent", zap.Error(err))
	}

	a2aServer := server.NewA2AServerBuilder(serverCfg, logger).
		WithAgent(agentInstance).
		Build()

	logger.Info("Stella agent created",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.String("gateway_url", cfg.LLM.GatewayURL))

	printStartupInfo(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := a2aServer.Start(ctx); err != nil {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := a2aServer.Stop(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("Goodbye!")
}

func systemPrompt(cfg *config.Config) string {
	currentTime := time.Now().Format("Monday, January 2, 2006 at 15:04 MST")
	return fmt.Sprintf(`Today is %s. The user's default timezone is %s.

You are a helpful assistant that manages the user's Google Calendar and Gmail.

CALENDAR RULES:
- When asked to create a calendar event, you MUST call create_event.
- When asked to list or find events, use list_events_for_day, list_events_between or find_events.
- When asked to update or delete an event, you MUST call update_event or delete_event.
- Do not claim an event was created, updated or deleted unless the tool returns success.

GMAIL RULES:
- When asked to find emails, you MUST use list_messages (and get_message for details).
- When asked to draft an email, you MUST use create_draft (or update_draft if editing an existing draft).
- When asked to reply, prefer create_reply_draft.
- Do NOT send emails unless the user explicitly asks to send. If asked to send, use send_draft.
- If the user says "delete email", interpret it as moving to trash using trash_message.
- Only use delete_message_permanently if the user explicitly requests permanent deletion.
- For bulk actions, summarize what will be changed (count plus a few examples) before applying.
- Do not claim an email was trashed, deleted, drafted or sent unless the tool returns success.

GENERAL:
- Use any of the tools available to complete the task.
- If you need tools that don't exist, say so clearly.
- Answer only the user's current message. Do not re-list information from previous tool results unless asked again.`, currentTime, cfg.Google.TimeZone)
}

func printStartupInfo(cfg *config.Config) {
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}

	fmt.Printf("\nStella agent running on port %s\n", port)
	fmt.Printf("\nAvailable endpoints:\n")
	fmt.Printf("  Agent info:   http://localhost:%s/.well-known/agent.json\n", port)
	fmt.Printf("  Health check: http://localhost:%s/health\n", port)
	fmt.Printf("  A2A endpoint: http://localhost:%s/a2a\n", port)

	fmt.Println("\nCalendar tools:")
	fmt.Println("  create_event, list_events_for_day, list_events_between, find_events,")
	fmt.Println("  update_event, delete_event, get_current_datetime")
	fmt.Println("\nGmail tools:")
	fmt.Println("  list_messages, get_message, trash_message, delete_message_permanently,")
	fmt.Println("  batch_modify_labels, create_draft, update_draft, send_draft, create_reply_draft")
}
