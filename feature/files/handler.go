package files

import (
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"file-agent/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for files and tools.
type Handler struct {
	service    *Service
	dispatcher *Dispatcher
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, dispatcher *Dispatcher) *Handler {
	return &Handler{service: service, dispatcher: dispatcher}
}

// WriteRequest is the body of POST /api/files.
type WriteRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// ToolInfo describes one tool in GET /api/tools.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RegisterRoutes registers the file routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api")
	api.Get("/files", h.HandleListFiles)
	api.Post("/files", h.HandleWriteFile)
	api.Get("/files/*", h.HandleReadFile)
	api.Delete("/files/*", h.HandleDeleteFile)
	api.Get("/stat/*", h.HandleStatFile)
	api.Get("/presign/*", h.HandleShareFile)
	api.Get("/tools", h.HandleListTools)
	api.Post("/tools/:name", h.HandleCallTool)
}

func statusFor(env Envelope) int {
	if env.Success {
		return fiber.StatusOK
	}
	switch env.Kind() {
	case ErrorKindNotFound:
		return fiber.StatusNotFound
	case ErrorKindTooLarge:
		return fiber.StatusRequestEntityTooLarge
	case ErrorKindInvalid:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respond(c *fiber.Ctx, env Envelope) error {
	return c.Status(statusFor(env)).JSON(env)
}

// filenameParam returns the decoded wildcard path, so keys may contain slashes.
func filenameParam(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("*"))
}

// HandleListFiles lists all files with their metadata.
// @Summary List Files
// @Description Lists every file in the bucket with size and last modification time when available.
// @Tags files
// @Produce json
// @Success 200 {object} files.FileDetailsData "File listing"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/files [get]
func (h *Handler) HandleListFiles(c *fiber.Ctx) error {
	return respond(c, h.service.ListFileDetails(c.Context()))
}

// HandleWriteFile creates or overwrites a file.
// @Summary Write File
// @Description Writes content to a file, replacing it if it exists. The content type is inferred from the filename.
// @Tags files
// @Accept json
// @Produce json
// @Param request body files.WriteRequest true "File to write"
// @Success 200 {object} files.WriteFileData "Written file"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/files [post]
func (h *Handler) HandleWriteFile(c *fiber.Ctx) error {
	var req WriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Fail("invalid request body: " + err.Error()))
	}
	if req.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(Fail("filename is required"))
	}
	return respond(c, h.service.WriteFile(c.Context(), req.Filename, req.Content))
}

// HandleReadFile returns the content of a file.
// @Summary Read File
// @Description Reads a file as text. Binary files are summarized instead of returned.
// @Tags files
// @Produce json
// @Param filename path string true "File key"
// @Success 200 {object} files.ReadFileData "File content"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /api/files/{filename} [get]
func (h *Handler) HandleReadFile(c *fiber.Ctx) error {
	filename, err := filenameParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Fail(err.Error()))
	}
	return respond(c, h.service.ReadFile(c.Context(), filename))
}

// HandleDeleteFile removes a file.
// @Summary Delete File
// @Tags files
// @Produce json
// @Param filename path string true "File key"
// @Success 200 {object} files.DeleteFileData "Deleted"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/files/{filename} [delete]
func (h *Handler) HandleDeleteFile(c *fiber.Ctx) error {
	filename, err := filenameParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Fail(err.Error()))
	}
	l := logger.WithRayID(h.service.logger, c)
	env := h.service.DeleteFile(c.Context(), filename)
	if !env.Success {
		l.Warn("Delete failed", zap.String("filename", filename), zap.String("error", env.Error))
	}
	return respond(c, env)
}

// HandleStatFile returns the metadata of a file.
// @Summary Stat File
// @Tags files
// @Produce json
// @Param filename path string true "File key"
// @Success 200 {object} files.StatFileData "Metadata"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /api/stat/{filename} [get]
func (h *Handler) HandleStatFile(c *fiber.Ctx) error {
	filename, err := filenameParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Fail(err.Error()))
	}
	return respond(c, h.service.StatFile(c.Context(), filename))
}

// HandleShareFile issues a presigned download URL.
// @Summary Share File
// @Description Returns a time-limited download URL for a file.
// @Tags files
// @Produce json
// @Param filename path string true "File key"
// @Param ttl query int false "Lifetime in seconds"
// @Success 200 {object} files.ShareFileData "Download URL"
// @Failure 400 {object} map[string]interface{} "Invalid ttl"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /api/presign/{filename} [get]
func (h *Handler) HandleShareFile(c *fiber.Ctx) error {
	filename, err := filenameParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Fail(err.Error()))
	}

	var ttl time.Duration
	if raw := c.Query("ttl"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(Fail("ttl must be a positive number of seconds"))
		}
		ttl = time.Duration(secs) * time.Second
	}
	return respond(c, h.service.ShareFile(c.Context(), filename, ttl))
}

// HandleListTools lists the tools that can be invoked.
// @Summary List Tools
// @Tags tools
// @Produce json
// @Success 200 {array} files.ToolInfo "Tools"
// @Router /api/tools [get]
func (h *Handler) HandleListTools(c *fiber.Ctx) error {
	ops := Operations()
	tools := make([]ToolInfo, 0, len(ops))
	for _, op := range ops {
		tools = append(tools, ToolInfo{Name: op.String(), Description: op.Description()})
	}
	return c.JSON(tools)
}

// HandleCallTool invokes a tool by name with the JSON request body as arguments.
// @Summary Call Tool
// @Description Invokes read_file, write_file or list_files and returns the result envelope.
// @Tags tools
// @Accept json
// @Produce json
// @Param name path string true "Tool name"
// @Param arguments body object false "Tool arguments"
// @Success 200 {object} map[string]interface{} "Result envelope"
// @Failure 400 {object} map[string]interface{} "Unknown tool or invalid arguments"
// @Router /api/tools/{name} [post]
func (h *Handler) HandleCallTool(c *fiber.Ctx) error {
	name := c.Params("name")
	logger.WithRayID(h.service.logger, c).Info("Tool call", zap.String("tool", name))

	env := h.dispatcher.Dispatch(c.Context(), name, json.RawMessage(c.Body()))
	if env.Kind() == ErrorKindInvalid {
		return c.Status(fiber.StatusBadRequest).JSON(env)
	}
	// Operation failures are part of the envelope and still answer 200.
	return c.JSON(env)
}
