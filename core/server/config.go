package server

import (
	"fmt"
	"math"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// Host is the interface to bind; empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// StaticDir holds the web dashboard, served at / and /static.
	StaticDir string `mapstructure:"static_dir" default:"static"`
}

// Address returns the listen address for fiber.App.Listen.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// BodyLimit returns the request body cap for a given file size limit. Writes carry
// JSON-escaped content, so the cap leaves headroom over the raw file size.
// A limit of zero or less means files are unbounded, and so is the body.
func BodyLimit(maxFileBytes int64) int {
	const floor = 4 * 1024 * 1024
	if maxFileBytes <= 0 || maxFileBytes > math.MaxInt/2 {
		return math.MaxInt
	}
	limit := int(maxFileBytes * 2)
	if limit < floor {
		return floor
	}
	return limit
}
