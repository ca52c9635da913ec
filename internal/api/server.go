// Package api serves the study app over HTTP. All endpoints speak the
// same JSON envelope: {success, count?, data?, message?, error?}.
package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/abhisek/kanado/internal/lessons"
	"github.com/abhisek/kanado/internal/review"
	"github.com/abhisek/kanado/internal/session"
	"github.com/abhisek/kanado/internal/stats"
)

// Server wires the services behind the HTTP routes.
type Server struct {
	echo *echo.Echo
	log  *slog.Logger

	reviews  *review.Service
	lessons  *lessons.Service
	stats    *stats.Aggregator
	sessions *session.Manager
	now      func() time.Time
}

// NewServer builds the echo instance with routes and middleware
// registered. Call Start to begin serving.
func NewServer(log *slog.Logger, reviews *review.Service, lessonSvc *lessons.Service, agg *stats.Aggregator, sessions *session.Manager) *Server {
	s := &Server{
		log:      log,
		reviews:  reviews,
		lessons:  lessonSvc,
		stats:    agg,
		sessions: sessions,
		now:      func() time.Time { return time.Now().UTC() },
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				log.Error("request", attrs...)
			} else {
				log.Info("request", attrs...)
			}
			return nil
		},
	}))

	s.routes(e)
	s.echo = e
	return s
}

func (s *Server) routes(e *echo.Echo) {
	g := e.Group("/api")

	g.GET("/health", s.health)

	g.GET("/reviews/due", s.dueReviews)
	g.POST("/reviews/:id/answer", s.answerReview)
	g.GET("/reviews/upcoming", s.upcomingReviews)
	g.GET("/reviews/upcoming/:date/hourly", s.hourlyReviews)

	g.GET("/katakana", s.allSymbols)
	g.GET("/stats", s.dashboard)

	g.GET("/lessons", s.lessonBatches)
	g.GET("/lessons/next", s.nextLesson)
	g.GET("/lessons/:batchNumber/items", s.lessonItems)
	g.POST("/lessons/:batchNumber/complete", s.completeLesson)
	g.POST("/lessons/notes", s.saveNote)
	g.DELETE("/lessons/notes/:katakanaId", s.deleteNote)

	g.POST("/sessions/reviews", s.startReviewSession)
	g.POST("/sessions/lessons/:batchNumber", s.startLessonSession)
	g.GET("/sessions/:id/next", s.sessionNext)
	g.POST("/sessions/:id/answer", s.sessionAnswer)
}

// Echo exposes the underlying engine, mainly for tests.
func (s *Server) Echo() *echo.Echo { return s.echo }

// Start blocks serving HTTP on addr until Shutdown or a fatal error.
func (s *Server) Start(addr string) error {
	s.log.Info("listening", slog.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
