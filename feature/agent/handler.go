package agent

import (
	"file-agent/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply of POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// Handler handles HTTP requests for the agent.
type Handler struct {
	agent  *Agent
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler. A nil agent answers 503.
func NewHandler(agent *Agent, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{agent: agent, logger: logger}
}

// RegisterRoutes registers the agent routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/api/chat", h.HandleChat)
}

// HandleChat sends one message to the agent.
// @Summary Chat
// @Description Sends a message to the agent, which may read, write and list files before answering.
// @Tags agent
// @Accept json
// @Produce json
// @Param request body agent.ChatRequest true "Message"
// @Success 200 {object} agent.ChatResponse "Agent reply"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 503 {object} map[string]string "Agent not initialized"
// @Router /api/chat [post]
func (h *Handler) HandleChat(c *fiber.Ctx) error {
	if h.agent == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Agent not initialized"})
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	l := logger.WithRayID(h.logger, c)
	l.Info("Chat request", zap.Int("length", len(req.Message)))

	reply, err := h.agent.Chat(c.Context(), req.Message)
	if err != nil {
		l.Error("Chat failed", zap.Error(err))
		return c.JSON(ChatResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(ChatResponse{Response: reply, Success: true})
}
