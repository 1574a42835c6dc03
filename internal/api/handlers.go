package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/longevity-index-server/internal/domain"
	"github.com/longevity-index-server/internal/reference"
)

// validationErrorBody is the response envelope for malformed client input
type validationErrorBody struct {
	Code      string                    `json:"code"`
	Message   string                    `json:"message"`
	Details   []*domain.ValidationError `json:"details,omitempty"`
	RequestID string                    `json:"request_id"`
}

// handleHealth handles liveness requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "longevity-index",
	})
}

// handleBiomarkerReference returns the full biomarker reference table
func (s *Server) handleBiomarkerReference(c *gin.Context) {
	c.JSON(http.StatusOK, reference.BiomarkerRanges())
}

// handleInterventionsList returns the static intervention list
func (s *Server) handleInterventionsList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"interventions": reference.Interventions(),
	})
}

// handleAnalyzeLongevity runs the biological-age analysis pipeline
func (s *Server) handleAnalyzeLongevity(c *gin.Context) {
	var profile domain.BiomarkerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		s.respondValidationError(c, err)
		return
	}

	result, err := s.analysis.AnalyzeLongevity(c.Request.Context(), &profile)
	if err != nil {
		s.respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleAnalyzeIntervention runs the single-intervention analysis pipeline
func (s *Server) handleAnalyzeIntervention(c *gin.Context) {
	var query domain.InterventionQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		s.respondValidationError(c, err)
		return
	}

	result, err := s.analysis.AnalyzeIntervention(c.Request.Context(), &query)
	if err != nil {
		s.respondCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondValidationError shapes bind failures into field-level detail
func (s *Server) respondValidationError(c *gin.Context, err error) {
	body := validationErrorBody{
		Code:      domain.ErrValidation,
		Message:   "request validation failed",
		RequestID: c.GetString("correlation_id"),
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			body.Details = append(body.Details, domain.NewValidationError(
				fe.Field(), "failed on the '"+fe.Tag()+"' rule", fe.Value()))
		}
	} else {
		body.Message = err.Error()
	}

	c.JSON(http.StatusUnprocessableEntity, body)
}

// respondCompletionError maps upstream model failures to a server error.
// Only call failures land here; an unparsable reply is handled by the
// normalizer and still returns 200.
func (s *Server) respondCompletionError(c *gin.Context, err error) {
	s.logger.WithError(err).Error("Analysis pipeline failed")

	c.JSON(http.StatusBadGateway, domain.NewAPIError(
		domain.ErrCompletion,
		"model completion call failed",
		err.Error(),
		c.GetString("correlation_id"),
	))
}
