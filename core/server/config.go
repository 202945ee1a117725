package server

import (
	"fmt"
	"net"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the host:port the server binds to.
	Address string `mapstructure:"address" default:"127.0.0.1:8080"`
	// BodyLimit is the largest accepted request body in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"67108864"`
}

// Validate checks that the address is a host:port pair with a usable port.
func (c Config) Validate() error {
	_, port, err := net.SplitHostPort(c.Address)
	if err != nil {
		return fmt.Errorf("invalid server address %q: %w", c.Address, err)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid server address %q: bad port", c.Address)
	}

	if c.BodyLimit < 0 {
		return fmt.Errorf("invalid body limit %d", c.BodyLimit)
	}
	return nil
}
