package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookie names the cookie carrying the browser's session id.
const SessionCookie = "pb_session"

const sessionKey = "SessionID"

// RequestLogger logs each request with zap, tagged with a request id taken
// from X-Request-ID or generated.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("RequestID", requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("latency", time.Since(start)),
		}
		for _, e := range c.Errors.Errors() {
			log.Error(e, fields...)
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("server error", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("client error", fields...)
		default:
			log.Debug("request", fields...)
		}
	}
}

// openSession attaches the caller's session, creating one when the cookie
// is missing or stale.
func (s *Server) openSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Cookie(SessionCookie)
		id := s.sessions.Open(current)
		if id != current {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// lookupSession attaches the caller's session id as sent. An unknown id
// reads as a fresh session.
func (s *Server) lookupSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Cookie(SessionCookie)
		c.Set(sessionKey, current)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
