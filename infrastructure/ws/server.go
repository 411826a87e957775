package ws

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"portal-chat/auth"
	"portal-chat/errors"
	"portal-chat/observability"
	"portal-chat/services"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
)

const maxLoginBody = 4096

// Snapshotter is the monitor as seen by the stats endpoint.
type Snapshotter interface {
	Refresh(ctx context.Context) (observability.Snapshot, error)
}

// NewRouter exposes the hub, the owner login and the stats endpoint.
// Forwarded client addresses are honoured only when the peer is one of
// trustedProxies (IPs or CIDRs). None means the socket peer is the client.
func NewRouter(log *slog.Logger, hub *Hub, authService services.IAuthService, tokens auth.TokenIssuer,
	stats Snapshotter, trustedProxies []string) (*gin.Engine, error) {
	log = log.With(slog.String("component", "http"))

	engine := gin.New()
	if err := engine.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	engine.Use(gin.Recovery())
	engine.Use(loggingMiddleware(log))

	engine.GET("/ws", hub.Handle)
	engine.POST("/auth/login", loginHandler(log, authService))
	engine.GET("/debug/stats", auth.RequireToken(tokens), statsHandler(log, stats))
	return engine, nil
}

type loginResponse struct {
	Token string `json:"token"`
}

func loginHandler(log *slog.Logger, authService services.IAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body auth.LoginRequest
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxLoginBody)
		if err := c.ShouldBindJSON(&body); err != nil {
			writeError(c, errors.ErrInvalidRequest)
			return
		}
		token, err := authService.Login(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			log.Info("Login rejected", "error", err)
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, loginResponse{Token: token.String()})
	}
}

func statsHandler(log *slog.Logger, stats Snapshotter) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := stats.Refresh(c.Request.Context())
		if err != nil {
			log.Error("Stats unavailable", "error", err)
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// loggingMiddleware logs every request but the websocket upgrades, which
// are logged by the hub for their whole lifetime.
func loggingMiddleware(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if c.FullPath() == "/ws" {
			return
		}
		log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

func writeError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(httpStatus(errors.Code(err)), toErrorPayload(err))
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Canceled, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewHTTPServer applies the timeouts of a public facing server. Hijacked
// websocket connections are not bound by them.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
