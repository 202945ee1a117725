// Package server holds the HTTP server configuration and the Fiber application
// factory.
//
// # Configuration
//
// The Config struct defines the bind address (default 127.0.0.1:8080) and the
// maximum accepted request body. Objects are uploaded whole, so the body limit
// is also the largest object the HTTP interface can store.
//
// # Usage
//
//	if err := cfg.Server.Validate(); err != nil {
//	    return err
//	}
//	app := server.NewApp(cfg.Server)
package server
