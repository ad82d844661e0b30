package dashboard

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

//go:embed fallback.html
var fallbackPage []byte

// Handler serves the dashboard files.
type Handler struct {
	dir string
}

// NewHandler creates a handler for the files in dir.
func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Static("/static", h.dir)
}

// HandleIndex serves index.html, falling back to the built-in page.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	index := filepath.Join(h.dir, "index.html")
	if info, err := os.Stat(index); err == nil && !info.IsDir() {
		return c.SendFile(index)
	}
	c.Type("html")
	return c.Send(fallbackPage)
}
