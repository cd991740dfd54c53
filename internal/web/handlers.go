package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leighmacdonald/folio/internal/contact"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   s.opts.Version,
	})
}

type contactResult struct {
	Success bool
	Message string
	Errors  []string
}

// contact answers with an html fragment that replaces the form's result area.
func (s *Server) contact(c *gin.Context) {
	var submission contact.Submission
	if err := c.ShouldBind(&submission); err != nil {
		c.HTML(http.StatusBadRequest, "contact_result.html", contactResult{Message: "Could not read the form."})

		return
	}

	submission = submission.Normalize()
	if err := submission.Validate(); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "contact_result.html", contactResult{
			Message: "Please fix the following:",
			Errors:  validationMessages(err),
		})

		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.opts.SendTimeout)
	defer cancel()

	if err := contact.Send(ctx, s.opts.Submitter, submission); err != nil {
		if errors.Is(err, contact.ErrNoHandler) {
			c.HTML(http.StatusServiceUnavailable, "contact_result.html", contactResult{
				Message: "The contact form is not connected yet, please reach out by email instead.",
			})

			return
		}

		slog.Error("Failed to send contact message", slog.String("error", err.Error()))
		c.HTML(http.StatusBadGateway, "contact_result.html", contactResult{
			Message: "Sorry, there was an error sending your message. Please try again later.",
		})

		return
	}

	slog.Info("Sent contact message", slog.String("email", submission.Email))
	c.HTML(http.StatusOK, "contact_result.html", contactResult{
		Success: true,
		Message: "Thank you for your message! I'll get back to you soon.",
	})
}

// validationMessages splits a joined validation error into one line per problem.
func validationMessages(err error) []string {
	var messages []string
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimPrefix(line, contact.ErrInvalid.Error()+": ")
		if line != "" {
			messages = append(messages, line)
		}
	}

	return messages
}
