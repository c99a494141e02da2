package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const (
	defaultRateLimit = 100
	maxBodyBytes     = 1 << 20 // 1 MB; classroom and allocation bodies are tiny
	handlerTimeout   = 30 * time.Second
)

// ServerConfig holds the options for NewRouter.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// Pass "*" (dev only) to allow all origins.
	CORSAllowedOrigins string
	// RateLimitPerMinute caps requests per client IP. Zero means the default of 100.
	RateLimitPerMinute int
}

// Middlewares are the process-specific middlewares NewRouter installs ahead of
// the chi built-ins. Any of them may be nil.
type Middlewares struct {
	Recovery func(http.Handler) http.Handler
	Sentry   func(http.Handler) http.Handler
	Otel     func(http.Handler) http.Handler
	Logger   func(http.Handler) http.Handler
}

// NewRouter returns a chi.Mux pre-wired with the standard middleware stack.
//
// Middleware order (outermost → innermost):
//  1. Recovery: catches panics that re-panic from sentry
//  2. Sentry: captures panics, re-panics
//  3. RequestID: unique X-Request-Id per request
//  4. Otel: starts trace span per request
//  5. Logger: logs request + trace_id/span_id
//  6. RealIP: sets RemoteAddr from X-Forwarded-For
//  7. RateLimit: cfg.RateLimitPerMinute per IP
//  8. CORS
//  9. BodyLimit: 1 MB request body cap
//  10. Timeout: 30 s handler deadline
//  11. Security headers
func NewRouter(cfg ServerConfig, mw Middlewares) *chi.Mux {
	sec := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=(), usb=(), magnetometer=(), gyroscope=()",
		IsDevelopment:         cfg.IsDevelopment,
	})

	limit := cfg.RateLimitPerMinute
	if limit <= 0 {
		limit = defaultRateLimit
	}

	var stack []func(http.Handler) http.Handler
	appendIf := func(m func(http.Handler) http.Handler) {
		if m != nil {
			stack = append(stack, m)
		}
	}
	appendIf(mw.Recovery)
	appendIf(mw.Sentry)
	stack = append(stack, middleware.RequestID)
	appendIf(mw.Otel)
	appendIf(mw.Logger)
	stack = append(stack,
		middleware.RealIP,
		httprate.LimitByIP(limit, time.Minute),
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(maxBodyBytes),
		middleware.Timeout(handlerTimeout),
		sec.Handler,
	)

	r := chi.NewRouter()
	r.Use(stack...)
	return r
}

// CORSMiddleware returns a CORS handler restricted to the given allowed origins.
// allowedOrigins is a comma-separated list (e.g. "https://app.example.com,http://localhost:3000").
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   parseOrigins(allowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location", "X-Request-Id", "X-Total-Count"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p := strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit caps the request body at maxBytes. Reads past the cap
// fail with *http.MaxBytesError.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server with production timeouts.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      handlerTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
