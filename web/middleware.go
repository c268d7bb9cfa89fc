package web

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"golang.org/x/time/rate"

	"staysearch/metrics"
	"staysearch/web/api"
)

const (
	sessionCookie = "staysearch_session"
	sessionKey    = "session_id"
	statusKey     = api.StatusKey
)

// sessionID returns the id SessionMiddleware assigned to the request
func sessionID(c rweb.Context) string {
	id, _ := c.Get(sessionKey).(string)
	return id
}

// SessionMiddleware gives every browser a session id cookie.
// A missing or malformed cookie is replaced by a fresh random id.
func SessionMiddleware(c rweb.Context) error {
	cookieValue, err := c.GetCookie(sessionCookie)
	if err == nil {
		if _, perr := uuid.Parse(cookieValue); perr == nil {
			c.Set(sessionKey, cookieValue)
			return c.Next()
		}
	}

	id := uuid.New().String()
	if err = c.SetCookie(sessionCookie, id); err != nil {
		logger.LogErr(err, "failed to set session cookie")
	}
	c.Set(sessionKey, id)
	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// listing photos are remote
	csp := []string{
		"default-src 'self'",
		"script-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// RateLimitMiddleware allows requestsPerMinute per client address with a burst of the same size.
// Zero or less disables limiting. Requests whose client cannot be identified are not limited.
func RateLimitMiddleware(requestsPerMinute int) rweb.Handler {
	if requestsPerMinute <= 0 {
		return func(c rweb.Context) error { return c.Next() }
	}

	type visitor struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var mu sync.Mutex
	visitors := make(map[string]*visitor)
	every := rate.Every(time.Minute / time.Duration(requestsPerMinute))

	return func(c rweb.Context) error {
		ip := clientIP(c)
		if ip == "" {
			return c.Next()
		}
		now := time.Now()

		mu.Lock()
		for addr, v := range visitors {
			if now.Sub(v.lastSeen) > 3*time.Minute {
				delete(visitors, addr)
			}
		}
		v, exists := visitors[ip]
		if !exists {
			v = &visitor{limiter: rate.NewLimiter(every, requestsPerMinute)}
			visitors[ip] = v
		}
		v.lastSeen = now
		allowed := v.limiter.AllowN(now, 1)
		mu.Unlock()

		if !allowed {
			logger.Info("Rate limit exceeded", "ip", ip)
			setStatus(c, http.StatusTooManyRequests)
			return nil
		}
		return c.Next()
	}
}

// clientIP is the rate limit key of a request, "" when the client cannot be identified
func clientIP(c rweb.Context) string {
	return clientAddr(c.Request().Headers(), c.GetConn())
}

// clientAddr prefers the proxy headers and falls back to the peer address of the connection.
// rweb drops the connection from the context after the first request on a keep-alive
// connection, so conn may be nil.
func clientAddr(headers []rweb.Header, conn net.Conn) string {
	if ip, _, _ := strings.Cut(headerValue(headers, "X-Forwarded-For"), ","); strings.TrimSpace(ip) != "" {
		return strings.TrimSpace(ip)
	}
	if ip := strings.TrimSpace(headerValue(headers, "X-Real-IP")); ip != "" {
		return ip
	}
	if conn == nil || conn.RemoteAddr() == nil {
		return ""
	}
	addr := conn.RemoteAddr().String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// headerValue finds a request header regardless of the case the client sent it in
func headerValue(headers []rweb.Header, key string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Key, key) {
			return h.Value
		}
	}
	return ""
}

// LoggingMiddleware logs each request and feeds the request metrics
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()
	method := c.Request().Method()
	path := c.Request().Path()

	logger.Debug("Request started", "method", method, "path", path)

	err := c.Next()

	duration := time.Since(start)
	status, ok := c.Get(statusKey).(int)
	if !ok {
		status = http.StatusOK
	}
	if err != nil {
		status = http.StatusInternalServerError
	}
	metrics.ObserveHTTP(routeLabel(path), method, status, duration)

	logger.Debug("Request completed",
		"method", method,
		"path", path,
		"status", status,
		"duration", duration,
		"error", err,
	)
	return err
}

// routeLabel collapses listing ids and filter ids in a path to ":id"
// so the request metrics stay low-cardinality
func routeLabel(path string) string {
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		switch parts[i-1] {
		case "markers", "favorites", "filters", "listings":
			parts[i] = ":id"
		}
	}
	if strings.HasPrefix(path, "/static/") {
		return "/static/*"
	}
	return strings.Join(parts, "/")
}
