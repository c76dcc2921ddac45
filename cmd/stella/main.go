package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	uuid "github.com/google/uuid"
	client "github.com/inference-gateway/adk/client"
	adk "github.com/inference-gateway/adk/types"
	envconfig "github.com/sethvargo/go-envconfig"
	zap "go.uber.org/zap"
)

// Config represents the chat client configuration
type Config struct {
	ServerURL      string        `env:"A2A_SERVER_URL,default=http://localhost:8080"`
	PollInterval   time.Duration `env:"POLL_INTERVAL,default=1s"`
	MaxPollTimeout time.Duration `env:"MAX_POLL_TIMEOUT,default=60s"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	UseAsyncMode   bool          `env:"USE_ASYNC_MODE,default=true"`
}

// ChatClient is an interactive terminal client for the Stella agent. It
// keeps the context id across turns so the agent sees one conversation.
type ChatClient struct {
	client    client.A2AClient
	config    Config
	logger    *zap.Logger
	ctx       context.Context
	contextID string
}

func main() {
	ctx := context.Background()

	var config Config
	if err := envconfig.Process(ctx, &config); err != nil {
		log.Fatalf("failed to process configuration: %v", err)
	}

	var logger *zap.Logger
	var err error
	if config.LogLevel == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	chatClient, err := NewChatClient(ctx, config, logger)
	if err != nil {
		logger.Fatal("failed to create chat client", zap.Error(err))
	}

	chatClient.StartInteractiveSession()
}

// NewChatClient connects to the agent and verifies it is reachable
func NewChatClient(ctx context.Context, config Config, logger *zap.Logger) (*ChatClient, error) {
	a2aClient := client.NewClientWithLogger(config.ServerURL, logger)

	logger.Info("connecting to Stella agent", zap.String("server_url", config.ServerURL))
	agentCard, err := a2aClient.GetAgentCard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent card: %w", err)
	}

	logger.Info("connected to agent",
		zap.String("agent_name", agentCard.Name),
		zap.String("agent_version", agentCard.Version))

	return &ChatClient{
		client: a2aClient,
		config: config,
		logger: logger,
		ctx:    ctx,
	}, nil
}

func (c *ChatClient) StartInteractiveSession() {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Stella - Calendar & Mail Assistant")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Ask about your calendar or your mail. Examples:")
	fmt.Println("  - What's on my calendar today?")
	fmt.Println("  - Schedule a dentist appointment Thursday at 10 AM")
	fmt.Println("  - Find unread emails from Alice")
	fmt.Println("  - Draft a reply to the latest invoice email")
	fmt.Println("Commands: help, status, reset, clear, quit")
	fmt.Println(strings.Repeat("=", 60) + "\n")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return
		case "help", "h":
			c.showHelp()
			continue
		case "clear":
			c.clearScreen()
			continue
		case "status", "s":
			c.showStatus()
			continue
		case "reset", "new":
			if c.contextID != "" {
				c.logger.Info("resetting context", zap.String("old_context", c.contextID))
				fmt.Println("Context reset. Starting new conversation.")
				c.contextID = ""
			} else {
				fmt.Println("No active context to reset.")
			}
			continue
		}

		c.processUserInput(input)
	}

	if err := scanner.Err(); err != nil {
		c.logger.Error("error reading input", zap.Error(err))
	}
}

func (c *ChatClient) processUserInput(input string) {
	c.logger.Debug("processing user input", zap.String("input", input))

	messageID := uuid.NewString()

	message := adk.Message{
		Kind:      "message",
		MessageID: messageID,
		Role:      "user",
		Parts: []adk.Part{
			map[string]interface{}{
				"kind": "text",
				"text": input,
			},
		},
	}

	if c.contextID != "" {
		message.ContextID = &c.contextID
		c.logger.Debug("using existing context",
			zap.String("context_id", c.contextID),
			zap.String("message_id", messageID))
	}

	msgParams := adk.MessageSendParams{
		Message: message,
		Configuration: &adk.MessageSendConfiguration{
			Blocking:            boolPtr(!c.config.UseAsyncMode),
			AcceptedOutputModes: []string{"text"},
		},
	}

	fmt.Print("Thinking...")

	start := time.Now()

	if c.config.UseAsyncMode {
		c.handleAsyncResponse(msgParams)
	} else {
		c.handleSyncResponse(msgParams)
	}

	c.logger.Debug("request completed", zap.Duration("duration", time.Since(start)))
}

func (c *ChatClient) handleSyncResponse(msgParams adk.MessageSendParams) {
	resp, err := c.client.SendTask(c.ctx, msgParams)
	if err != nil {
		fmt.Printf("\rError: %v\n", err)
		return
	}

	var task adk.Task
	if err := c.parseTaskFromResponse(resp.Result, &task); err != nil {
		fmt.Printf("\rError parsing response: %v\n", err)
		return
	}

	c.updateContextID(&task)
	c.displayTaskResult(&task)
}

func (c *ChatClient) handleAsyncResponse(msgParams adk.MessageSendParams) {
	resp, err := c.client.SendTask(c.ctx, msgParams)
	if err != nil {
		fmt.Printf("\rError: %v\n", err)
		return
	}

	var task adk.Task
	if err := c.parseTaskFromResponse(resp.Result, &task); err != nil {
		fmt.Printf("\rError parsing response: %v\n", err)
		return
	}

	c.updateContextID(&task)

	if task.Status.State == adk.TaskStateCompleted {
		c.displayTaskResult(&task)
		return
	}

	c.pollForCompletion(&task)
}

// updateContextID keeps the conversation id in sync with the agent's view
func (c *ChatClient) updateContextID(task *adk.Task) {
	if task.ContextID == "" {
		c.logger.Warn("task has no context ID", zap.String("task_id", task.ID))
		return
	}
	if c.contextID != task.ContextID {
		c.logger.Debug("context updated",
			zap.String("old_context", c.contextID),
			zap.String("new_context", task.ContextID),
			zap.String("task_id", task.ID))
	}
	c.contextID = task.ContextID
}

func (c *ChatClient) pollForCompletion(task *adk.Task) {
	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	timeout := time.NewTimer(c.config.MaxPollTimeout)
	defer timeout.Stop()

	dots := 0
	maxDots := 3

	for {
		select {
		case <-c.ctx.Done():
			fmt.Printf("\rRequest cancelled\n")
			return

		case <-timeout.C:
			fmt.Printf("\rRequest timed out after %v\n", c.config.MaxPollTimeout)
			return

		case <-ticker.C:
			fmt.Printf("\rThinking%s%s", strings.Repeat(".", dots+1), strings.Repeat(" ", maxDots-dots))
			dots = (dots + 1) % (maxDots + 1)

			taskResp, err := c.client.GetTask(c.ctx, adk.TaskQueryParams{
				ID: task.ID,
			})
			if err != nil {
				c.logger.Debug("failed to get task status", zap.Error(err))
				continue
			}

			var updatedTask adk.Task
			if err := c.parseTaskFromResponse(taskResp.Result, &updatedTask); err != nil {
				c.logger.Debug("failed to parse task response", zap.Error(err))
				continue
			}

			switch updatedTask.Status.State {
			case adk.TaskStateCompleted:
				c.updateContextID(&updatedTask)
				c.displayTaskResult(&updatedTask)
				return

			case adk.TaskStateFailed:
				errorMsg := "Unknown error occurred"
				if updatedTask.Status.Message != nil {
					errorMsg = c.extractTextFromMessage(updatedTask.Status.Message)
				}
				fmt.Printf("\rTask failed: %s\n", errorMsg)
				return

			case adk.TaskStateCanceled:
				fmt.Printf("\rTask was cancelled\n")
				return

			case adk.TaskStateSubmitted, adk.TaskStateWorking:
				continue

			default:
				c.logger.Debug("task in unexpected state", zap.String("state", string(updatedTask.Status.State)))
				continue
			}
		}
	}
}

func (c *ChatClient) parseTaskFromResponse(result interface{}, task *adk.Task) error {
	resultBytes, ok := result.(json.RawMessage)
	if !ok {
		return fmt.Errorf("unexpected response result type")
	}
	return json.Unmarshal(resultBytes, task)
}

func (c *ChatClient) displayTaskResult(task *adk.Task) {
	// Clear the thinking indicator
	fmt.Print("\r" + strings.Repeat(" ", 20) + "\r")

	if len(task.History) == 0 {
		fmt.Println("Stella: No response received")
		return
	}

	var assistantMessages []*adk.Message
	for i := range task.History {
		if task.History[i].Role == "assistant" {
			assistantMessages = append(assistantMessages, &task.History[i])
		}
	}

	if len(assistantMessages) == 0 {
		fmt.Println("Stella: No assistant response found")
		return
	}

	for i, msg := range assistantMessages {
		responseText := c.extractTextFromMessage(msg)
		if responseText == "" {
			fmt.Println("Stella: (No text response)")
			continue
		}
		if i == 0 {
			fmt.Printf("Stella: %s\n", responseText)
		} else {
			fmt.Printf("Stella (continued): %s\n", responseText)
		}
	}

	fmt.Println()
}

func (c *ChatClient) extractTextFromMessage(message *adk.Message) string {
	var text strings.Builder

	for _, part := range message.Parts {
		partMap, ok := part.(map[string]interface{})
		if !ok {
			if partStr, ok := part.(string); ok {
				text.WriteString(partStr)
			}
			continue
		}

		if textContent, exists := partMap["text"]; exists {
			if textStr, ok := textContent.(string); ok {
				text.WriteString(textStr)
			}
		}

		if contentField, exists := partMap["content"]; exists {
			if contentStr, ok := contentField.(string); ok {
				text.WriteString(contentStr)
			}
		}
	}

	return text.String()
}

func (c *ChatClient) showHelp() {
	fmt.Println("\nExamples:")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("Calendar:")
	fmt.Println("  - What's on my calendar today?")
	fmt.Println("  - Show my meetings between Monday and Friday")
	fmt.Println("  - Schedule a meeting with Sarah at 3 PM tomorrow")
	fmt.Println("  - Move my dentist appointment to Friday")
	fmt.Println("  - Cancel my 2 PM meeting today")
	fmt.Println()
	fmt.Println("Mail:")
	fmt.Println("  - Find unread emails from Alice")
	fmt.Println("  - Show me the latest invoice email")
	fmt.Println("  - Draft an email to Bob about the offsite")
	fmt.Println("  - Reply to the project update email")
	fmt.Println("  - Archive the newsletters from last week")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  - help or h - Show this help message")
	fmt.Println("  - status or s - Show current session status and context")
	fmt.Println("  - reset or new - Start a new conversation")
	fmt.Println("  - clear - Clear the screen")
	fmt.Println("  - quit, exit, or q - Exit the client")
	fmt.Println(strings.Repeat("-", 50) + "\n")
}

func (c *ChatClient) clearScreen() {
	fmt.Print("\033[H\033[2J")
	fmt.Println("Stella - Calendar & Mail Assistant")
	fmt.Println(strings.Repeat("=", 60) + "\n")
}

func (c *ChatClient) showStatus() {
	fmt.Println("\nClient Status:")
	fmt.Println(strings.Repeat("-", 30))
	if c.contextID != "" {
		fmt.Printf("Context ID: %s\n", c.contextID)
		fmt.Println("Conversation active - messages are linked")
	} else {
		fmt.Println("Context ID: (none)")
		fmt.Println("No active conversation - next message starts a new session")
	}
	fmt.Printf("Server URL: %s\n", c.config.ServerURL)
	fmt.Printf("Async Mode: %v\n", c.config.UseAsyncMode)
	fmt.Printf("Log Level: %s\n", c.config.LogLevel)
	fmt.Println(strings.Repeat("-", 30) + "\n")
}

func boolPtr(b bool) *bool {
	return &b
}
