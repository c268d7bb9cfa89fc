package web

import (
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates the RWeb server for app with the given options
func NewServer(opts rweb.ServerOptions, app *App) *rweb.Server {
	s := rweb.NewServer(opts)

	// Apply middleware
	s.Use(rweb.RequestInfo)                          // Logs request info
	s.Use(RateLimitMiddleware(app.Config.RateLimit)) // Per-client request budget
	s.Use(SecurityHeadersMiddleware)                 // Security headers
	s.Use(SessionMiddleware)                         // Session cookie
	s.Use(LoggingMiddleware)                         // Request logging and metrics

	setupRoutes(s, app)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, address string) error {
	logger.Info("StaySearch web server starting", "address", address)
	return s.Run()
}
