// Package ginguard applies timebomb guards to gin routes, typically to retire
// a deprecated endpoint on a published date.
package ginguard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

// SunsetHeader announces when a route stops being served (RFC 8594).
const SunsetHeader = "Sunset"

type ErrorResponse struct {
	Error  string `json:"error"`
	Sunset string `json:"sunset"`
}

type Middleware struct {
	guard *timebomb.Guard
}

// New builds middleware sharing the guard's default options.
func New(guard *timebomb.Guard) *Middleware {
	if guard == nil {
		guard = timebomb.NewGuard()
	}
	return &Middleware{guard: guard}
}

// WarnAfter logs through the guard sink once the route's deadline passes.
func (m *Middleware) WarnAfter(deadline time.Time, opts ...timebomb.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSunset(c, deadline)
		m.guard.WarnAfter(deadline, requestOptions(c, opts)...)
		c.Next()
	}
}

// SlowAfter delays the request inside the handler chain once the deadline
// passes. The request's own timeout is what bounds the delay.
func (m *Middleware) SlowAfter(deadline time.Time, policy timebomb.DelayPolicy, opts ...timebomb.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSunset(c, deadline)
		m.guard.SlowAfter(deadline, policy, requestOptions(c, opts)...)
		c.Next()
	}
}

// FailAfter answers 410 Gone once the deadline passes.
func (m *Middleware) FailAfter(deadline time.Time, opts ...timebomb.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSunset(c, deadline)

		// FailAfter only ever returns *timebomb.ExpiredError.
		err := m.guard.FailAfter(deadline, requestOptions(c, opts)...)
		if err != nil {
			slog.InfoContext(c.Request.Context(), "rejected request to retired route",
				slog.String("event", "timebomb.route.gone"),
				slog.String("path", c.FullPath()),
				slog.Time("deadline", deadline),
			)
			c.AbortWithStatusJSON(http.StatusGone, ErrorResponse{
				Error:  err.Error(),
				Sunset: deadline.UTC().Format(time.RFC3339),
			})
			return
		}

		c.Next()
	}
}

func WarnAfter(deadline time.Time, opts ...timebomb.Option) gin.HandlerFunc {
	return New(nil).WarnAfter(deadline, opts...)
}

func SlowAfter(deadline time.Time, policy timebomb.DelayPolicy, opts ...timebomb.Option) gin.HandlerFunc {
	return New(nil).SlowAfter(deadline, policy, opts...)
}

func FailAfter(deadline time.Time, opts ...timebomb.Option) gin.HandlerFunc {
	return New(nil).FailAfter(deadline, opts...)
}

func requestOptions(c *gin.Context, opts []timebomb.Option) []timebomb.Option {
	out := make([]timebomb.Option, 0, len(opts)+1)
	out = append(out, timebomb.WithContext(c.Request.Context()))
	return append(out, opts...)
}

func setSunset(c *gin.Context, deadline time.Time) {
	c.Header(SunsetHeader, deadline.UTC().Format(http.TimeFormat))
}
