// Package server holds the HTTP server configuration and lifecycle.
//
// # Configuration
//
// The Config struct defines the port, the served root directory and whether
// requests are handled one at a time. ParsePort and ResolveRoot turn raw
// values into a validated port and an absolute directory, once, at startup.
//
// # Lifecycle
//
//	srv := server.New(cfg, port, logger)
//	// register features on srv.App()
//	if err := srv.Listen(); err != nil { ... }
//	server.Banner(os.Stdout, srv.Port(), root)
//	go srv.Serve()
//	...
//	srv.Shutdown()
//
// Every response carries the security headers from the secure middleware.
package server
