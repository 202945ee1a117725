package server_test

import (
	"testing"

	"filestorage/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     server.Config
		wantErr bool
	}{
		{"Default", server.Config{Address: "127.0.0.1:8080"}, false},
		{"AllInterfaces", server.Config{Address: ":9000"}, false},
		{"IPv6", server.Config{Address: "[::1]:8080"}, false},
		{"EphemeralPort", server.Config{Address: "localhost:0"}, false},
		{"MissingPort", server.Config{Address: "127.0.0.1"}, true},
		{"NamedPort", server.Config{Address: "127.0.0.1:http"}, true},
		{"PortTooLarge", server.Config{Address: "127.0.0.1:70000"}, true},
		{"Empty", server.Config{}, true},
		{"NegativeBodyLimit", server.Config{Address: ":8080", BodyLimit: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
