package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"

	"static-server/core/middleware/secure"
	"static-server/core/middleware/serial"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server owns the fiber application and its listener.
type Server struct {
	cfg      Config
	port     int
	app      *fiber.App
	logger   *zap.Logger
	ln       net.Listener
	stopping atomic.Bool
}

// New creates a server for the given port. Middleware shared by every route
// is registered here; routes are added by features through App.
func New(cfg Config, port int, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "static-server",
		// Also receives errors raised by fasthttp before routing (400, 431).
		ErrorHandler: secure.ErrorHandler,
	})

	if cfg.Serial {
		app.Use(serial.New())
	}
	app.Use(secure.New())

	return &Server{
		cfg:    cfg,
		port:   port,
		app:    app,
		logger: logger,
	}
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the listening socket on all IPv4 interfaces.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp4", fmt.Sprintf("0.0.0.0:%d", s.port))
	if err != nil {
		return fmt.Errorf("bind port %d: %w", s.port, err)
	}
	s.ln = ln
	return nil
}

// Port returns the bound port, or the configured one before Listen.
func (s *Server) Port() int {
	if s.ln == nil {
		return s.port
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Serve accepts connections until Shutdown is called.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("server is not listening")
	}
	s.logger.Info("Server listening", zap.String("addr", s.ln.Addr().String()), zap.Bool("serial", s.cfg.Serial))
	if err := s.app.Listener(s.ln); err != nil && !s.stopping.Load() {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and closes the listener. Open
// connections get at most ShutdownTimeout to finish; whatever is still
// running afterwards is abandoned.
func (s *Server) Shutdown() error {
	s.stopping.Store(true)
	s.logger.Info("Shutting down server...", zap.Duration("timeout", s.cfg.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	err := s.app.ShutdownWithContext(ctx)

	// Serve may not have handed the listener to fasthttp yet.
	if s.ln != nil {
		_ = s.ln.Close()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		s.logger.Warn("Abandoning open connections")
		return nil
	}
	return err
}
