package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"file-agent/feature/files"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var (
	// ErrTooManyTurns is returned when the model keeps calling tools past the turn limit.
	ErrTooManyTurns = errors.New("agent exceeded the maximum number of turns")
	// ErrNoChoices is returned when a completion carries no message.
	ErrNoChoices = errors.New("completion returned no choices")
)

// CompletionClient is the part of *openai.Client the agent uses.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ToolDispatcher executes a tool call by name. *files.Dispatcher implements it.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, name string, raw json.RawMessage) files.Envelope
}

// NewClient builds an OpenAI-compatible client for cfg.
func NewClient(cfg Config) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}

// Agent answers messages by letting the model call the file tools.
type Agent struct {
	client      CompletionClient
	tools       ToolDispatcher
	model       string
	instruction string
	maxTurns    int
	logger      *zap.Logger
}

// New creates an agent using the default system instruction.
func New(client CompletionClient, tools ToolDispatcher, cfg Config, logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Agent initialized", zap.String("model", cfg.Model))
	return &Agent{
		client:      client,
		tools:       tools,
		model:       cfg.Model,
		instruction: SystemInstruction,
		maxTurns:    cfg.maxTurns(),
		logger:      logger,
	}
}

// Model returns the configured model name.
func (a *Agent) Model() string {
	return a.model
}

// Chat answers message in a fresh session.
func (a *Agent) Chat(ctx context.Context, message string) (string, error) {
	return a.NewSession().Send(ctx, message)
}

// NewSession starts a conversation that keeps its history across Send calls.
func (a *Agent) NewSession() *Session {
	return &Session{
		agent: a,
		history: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.instruction},
		},
	}
}

// Session is a single conversation. It is safe for concurrent use, but
// messages are answered one at a time.
type Session struct {
	mu      sync.Mutex
	agent   *Agent
	history []openai.ChatCompletionMessage
}

// History returns a copy of the conversation so far, system message included.
func (s *Session) History() []openai.ChatCompletionMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]openai.ChatCompletionMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Send adds message to the conversation and runs completions, executing any
// tool calls, until the model answers with text. On error the history is left
// as it was before the call.
func (s *Session) Send(ctx context.Context, message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.agent
	a.logger.Info("User message", zap.Int("length", len(message)))

	mark := len(s.history)
	s.history = append(s.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	reply, err := s.run(ctx)
	if err != nil {
		s.history = s.history[:mark]
		a.logger.Error("Agent failed to answer", zap.Error(err))
		return "", err
	}
	return reply, nil
}

func (s *Session) run(ctx context.Context) (string, error) {
	a := s.agent
	tools := Tools()

	for turn := 0; turn < a.maxTurns; turn++ {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: s.history,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", ErrNoChoices
		}

		msg := resp.Choices[0].Message
		s.history = append(s.history, msg)

		if len(msg.ToolCalls) == 0 {
			a.logger.Info("Agent replied", zap.Int("turns", turn+1))
			return msg.Content, nil
		}

		for _, call := range msg.ToolCalls {
			s.history = append(s.history, a.callTool(ctx, call))
		}
	}
	return "", ErrTooManyTurns
}

func (a *Agent) callTool(ctx context.Context, call openai.ToolCall) openai.ChatCompletionMessage {
	a.logger.Info("Tool call", zap.String("tool", call.Function.Name), zap.String("call_id", call.ID))

	env := a.tools.Dispatch(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))
	content, err := json.Marshal(env)
	if err != nil {
		content, _ = json.Marshal(files.Fail(err.Error()))
	}

	return openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    string(content),
		Name:       call.Function.Name,
		ToolCallID: call.ID,
	}
}
