package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.trai.ch/fixit/internal/core/domain"
	"golang.org/x/text/language"
)

const (
	msgNoFixes      = "No fixes found for the snippet!"
	msgInvalidKey   = "Invalid code challenge key"
	msgInvalidBody  = "Invalid request body"
	msgInternal     = "Internal server error"
	statusErrorFlag = "error"
)

type fixesResponse struct {
	Fixes []string `json:"fixes"`
}

type verdictRequest struct {
	Key         string `json:"key" binding:"required"`
	SelectedFix *int   `json:"selectedFix" binding:"required"`
}

type verdictResponse struct {
	Verdict     bool    `json:"verdict"`
	Explanation *string `json:"explanation,omitempty"`
}

type challengeAccuracyResponse struct {
	Key      string `json:"key"`
	Attempts int    `json:"attempts"`
	Passed   int    `json:"passed"`
	Solved   bool   `json:"solved"`
}

type accuracyResponse struct {
	Challenges []challengeAccuracyResponse `json:"challenges"`
	Attempts   int                         `json:"attempts"`
	Passed     int                         `json:"passed"`
	Solved     int                         `json:"solved"`
	Ratio      float64                     `json:"ratio"`
}

func (s *Server) getFixes(c *gin.Context) {
	set, err := s.verifier.Fixes(c.Request.Context(), c.Param("key"))
	if err != nil {
		s.fail(c, err)
		return
	}

	etag := `"` + strconv.FormatUint(set.Digest, 16) + `"`
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.JSON(http.StatusOK, fixesResponse{Fixes: set.Fixes})
}

func (s *Server) postVerdict(c *gin.Context) {
	var req verdictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": statusErrorFlag, "error": msgInvalidBody})
		return
	}

	outcome, err := s.verifier.Check(c.Request.Context(), req.Key, *req.SelectedFix)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := verdictResponse{Verdict: outcome.Verdict}
	if outcome.HasExplanation {
		explanation := s.translator.Translate(requestLocale(c), outcome.Explanation)
		resp.Explanation = &explanation
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getAccuracy(c *gin.Context) {
	report, err := s.reporter.Report(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := accuracyResponse{
		Challenges: make([]challengeAccuracyResponse, 0, len(report.Challenges)),
		Attempts:   report.Attempts,
		Passed:     report.Passed,
		Solved:     report.Solved(),
		Ratio:      report.Ratio(),
	}
	for _, ch := range report.Challenges {
		resp.Challenges = append(resp.Challenges, challengeAccuracyResponse(ch))
	}
	c.JSON(http.StatusOK, resp)
}

// fail maps an engine error to a response. Bodies never carry paths or keys.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidKey):
		c.JSON(http.StatusBadRequest, gin.H{"status": statusErrorFlag, "error": msgInvalidKey})
	case errors.Is(err, domain.ErrNoFixesFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgNoFixes})
	default:
		s.logger.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

// requestLocale returns the preferred Accept-Language tag, or "" to use the default locale.
func requestLocale(c *gin.Context) string {
	tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}
