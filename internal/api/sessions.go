package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/abhisek/kanado/internal/session"
)

// sessionInfo is the response for session-creating endpoints.
type sessionInfo struct {
	SessionID string       `json:"session_id"`
	Kind      session.Kind `json:"kind"`
	Total     int          `json:"total"`
}

func (s *Server) startReviewSession(c echo.Context) error {
	sess, err := s.sessions.StartReview(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	_, total, _, _ := s.sessions.Progress(sess.ID)
	return ok(c, sessionInfo{SessionID: sess.ID, Kind: sess.Kind, Total: total})
}

func (s *Server) startLessonSession(c echo.Context) error {
	batchNumber, err := strconv.Atoi(c.Param("batchNumber"))
	if err != nil {
		return badRequest(c, "invalid batch number")
	}
	sess, err := s.sessions.StartLesson(c.Request().Context(), batchNumber)
	if err != nil {
		return fail(c, err)
	}
	_, total, _, _ := s.sessions.Progress(sess.ID)
	return ok(c, sessionInfo{SessionID: sess.ID, Kind: sess.Kind, Total: total})
}

// sessionCard is one card served to the client, with progress alongside.
type sessionCard struct {
	Card     *session.Card `json:"card"`
	Answered int           `json:"answered"`
	Total    int           `json:"total"`
	Done     bool          `json:"done"`
}

func (s *Server) sessionNext(c echo.Context) error {
	id := c.Param("id")
	_, card, err := s.sessions.Next(id)
	if err != nil {
		return fail(c, err)
	}
	answered, total, _, err := s.sessions.Progress(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, sessionCard{Card: card, Answered: answered, Total: total, Done: card == nil})
}

type sessionAnswerRequest struct {
	IsCorrect *bool `json:"isCorrect"`
}

func (s *Server) sessionAnswer(c echo.Context) error {
	var req sessionAnswerRequest
	if err := c.Bind(&req); err != nil || req.IsCorrect == nil {
		return badRequest(c, "isCorrect must be a boolean")
	}
	ans, err := s.sessions.SubmitAnswer(c.Request().Context(), c.Param("id"), *req.IsCorrect)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, ans)
}
