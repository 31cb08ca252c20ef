package v1

import (
	"net/http"

	"ats-resume-scorer/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the AI-assisted content routes
func NewContentHandler(api *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	api.POST("/optimize-content", handler.OptimizeContent)
	api.POST("/extract-job-keywords", handler.ExtractJobKeywords)
}

// OptimizeContent godoc
// @Summary      Rewrite resume content
// @Description  Rewrites a bullet point, summary or other section to be more ATS friendly.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        request  body      domain.OptimizeContentRequest  true  "Content to optimize"
// @Success      200      {object}  domain.OptimizeContentResponse
// @Failure      400      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /optimize-content [post]
func (h *ContentHandler) OptimizeContent(c *gin.Context) {
	var req domain.OptimizeContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.contentUC.OptimizeContent(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExtractJobKeywords godoc
// @Summary      Summarize a job description
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ExtractKeywordsRequest  true  "Job description"
// @Success      200      {object}  domain.JobKeywords
// @Failure      400      {object}  response.Response
// @Router       /extract-job-keywords [post]
func (h *ContentHandler) ExtractJobKeywords(c *gin.Context) {
	var req domain.ExtractKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.contentUC.ExtractJobKeywords(c.Request.Context(), req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
