package v1

import (
	"net/http"
	"strings"

	"ats-resume-scorer/internal/delivery/http/response"
	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/usecase"
	"ats-resume-scorer/pkg/apperror"
	"ats-resume-scorer/pkg/validation"

	"github.com/gin-gonic/gin"
)

var exportContentTypes = map[string]string{
	usecase.ExportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	usecase.ExportCSV:  "text/csv; charset=utf-8",
}

type AnalysisHandler struct {
	analysisUC domain.AnalysisUsecase
}

// NewAnalysisHandler registers the resume analysis routes
func NewAnalysisHandler(api *gin.RouterGroup, analysisUC domain.AnalysisUsecase) {
	handler := &AnalysisHandler{analysisUC: analysisUC}

	api.POST("/analyze-resume", handler.AnalyzeResume)
	api.POST("/analyze-resume/export", handler.ExportReport)
}

// AnalyzeResume godoc
// @Summary      Score a resume against a job description
// @Description  Returns the ATS score, per-category scores, issues, missing keywords and suggestions.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      domain.AnalyzeRequest  true  "Resume and job description"
// @Success      200      {object}  domain.AnalysisResponse
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /analyze-resume [post]
func (h *AnalysisHandler) AnalyzeResume(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.analysisUC.Analyze(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportReport godoc
// @Summary      Download an analysis report
// @Description  Scores the resume and returns the report as an Excel workbook or CSV file.
// @Tags         analysis
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format   query     string                 false  "xlsx (default) or csv"
// @Param        request  body      domain.AnalyzeRequest  true   "Resume and job description"
// @Success      200      {file}    file
// @Failure      400      {object}  response.Response
// @Router       /analyze-resume/export [post]
func (h *AnalysisHandler) ExportReport(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", usecase.ExportXLSX))
	data, filename, err := h.analysisUC.ExportReport(c.Request.Context(), req, format)
	if err != nil {
		c.Error(err)
		return
	}

	response.Attachment(c, filename, exportContentTypes[format], data)
}

// bindError turns a JSON binding failure into a 400 with readable field messages.
func bindError(err error) *apperror.AppError {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}
