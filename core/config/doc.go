// Package config provides configuration management for the static server.
//
// Values come from environment variables, optionally seeded from a .env file,
// and fall back to the `default` struct tags of each section:
//   - Server: port, root directory, serial request handling
//   - Log: level and format
//
// A port given on the command line takes precedence over SERVER_PORT; that
// override happens in the cmd package.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
