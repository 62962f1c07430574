package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Root is the directory files are served from. Empty means the directory
	// containing the executable.
	Root string `mapstructure:"root" default:""`
	// Serial handles one request at a time when true.
	Serial bool `mapstructure:"serial" default:"true"`
	// ShutdownTimeout bounds how long Shutdown waits for open connections.
	// Zero stops immediately without waiting.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"0s"`
}

// DefaultPort is used when neither the command line nor the environment names one.
const DefaultPort = 8080
