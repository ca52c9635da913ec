package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) dueReviews(c echo.Context) error {
	due, err := s.reviews.Due(c.Request().Context(), s.now())
	if err != nil {
		return fail(c, err)
	}
	return okCount(c, due, len(due))
}

type answerRequest struct {
	IsCorrect *bool `json:"isCorrect"`
}

func (s *Server) answerReview(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid review ID")
	}
	var req answerRequest
	if err := c.Bind(&req); err != nil || req.IsCorrect == nil {
		return badRequest(c, "isCorrect must be a boolean")
	}
	updated, err := s.reviews.SubmitAnswer(c.Request().Context(), id, *req.IsCorrect, s.now())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, updated)
}

func (s *Server) allSymbols(c echo.Context) error {
	symbols, err := s.reviews.SymbolsWithReviews(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return okCount(c, symbols, len(symbols))
}

func (s *Server) dashboard(c echo.Context) error {
	d, err := s.stats.Dashboard(c.Request().Context(), s.now())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, d)
}

func (s *Server) upcomingReviews(c echo.Context) error {
	days, err := s.stats.Upcoming(c.Request().Context(), s.now())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, days)
}

func (s *Server) hourlyReviews(c echo.Context) error {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}
	hours, err := s.stats.Hourly(c.Request().Context(), date)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, hours)
}

func (s *Server) lessonBatches(c echo.Context) error {
	batches, err := s.lessons.Batches(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return okCount(c, batches, len(batches))
}

func (s *Server) nextLesson(c echo.Context) error {
	next, err := s.lessons.Next(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if next == nil {
		return c.JSON(http.StatusOK, envelope{Success: true, Message: "All lessons completed!"})
	}
	return ok(c, next)
}

func (s *Server) lessonItems(c echo.Context) error {
	batchNumber, err := strconv.Atoi(c.Param("batchNumber"))
	if err != nil {
		return badRequest(c, "invalid batch number")
	}
	items, err := s.lessons.Items(c.Request().Context(), batchNumber)
	if err != nil {
		return fail(c, err)
	}
	return okCount(c, items, len(items))
}

type quizResult struct {
	KatakanaID int  `json:"katakanaId"`
	Correct    bool `json:"correct"`
}

type completeLessonRequest struct {
	QuizResults []quizResult `json:"quizResults"`
}

func (s *Server) completeLesson(c echo.Context) error {
	batchNumber, err := strconv.Atoi(c.Param("batchNumber"))
	if err != nil {
		return badRequest(c, "invalid batch number")
	}
	var req completeLessonRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	var firstAttempt map[int]bool
	if len(req.QuizResults) > 0 {
		firstAttempt = make(map[int]bool, len(req.QuizResults))
		for _, r := range req.QuizResults {
			firstAttempt[r.KatakanaID] = r.Correct
		}
	}
	if err := s.lessons.Complete(c.Request().Context(), batchNumber, firstAttempt, s.now()); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "Lesson completed successfully")
}

type saveNoteRequest struct {
	KatakanaID int    `json:"katakanaId"`
	Note       string `json:"note"`
}

func (s *Server) saveNote(c echo.Context) error {
	var req saveNoteRequest
	if err := c.Bind(&req); err != nil || req.KatakanaID == 0 || req.Note == "" {
		return badRequest(c, "katakanaId and note are required")
	}
	saved, err := s.lessons.SaveNote(c.Request().Context(), req.KatakanaID, req.Note)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, saved)
}

func (s *Server) deleteNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("katakanaId"))
	if err != nil {
		return badRequest(c, "invalid katakana ID")
	}
	if err := s.lessons.DeleteNote(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "Note deleted successfully")
}
