package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"ats-resume-scorer/internal/delivery/http/response"
	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// multipart headers and boundaries on top of the file itself
const multipartOverhead = 64 << 10

type UploadHandler struct {
	uploadUC domain.UploadUsecase
	maxBytes int64
}

// NewUploadHandler registers the resume upload route. Extra middleware, such as
// the upload rate limit, runs before the handler.
func NewUploadHandler(api *gin.RouterGroup, uploadUC domain.UploadUsecase, maxBytes int64, mw ...gin.HandlerFunc) {
	handler := &UploadHandler{uploadUC: uploadUC, maxBytes: maxBytes}

	api.POST("/upload-resume", append(mw, handler.UploadResume)...)
}

// UploadResume godoc
// @Summary      Upload a resume file
// @Description  Accepts a PDF, DOCX or TXT resume, scans it and returns the extracted text and parsed record.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file (.pdf, .docx, .txt)"
// @Success      200   {object}  response.Response{data=domain.UploadResult}
// @Failure      400   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Failure      415   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /upload-resume [post]
func (h *UploadHandler) UploadResume(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.Error(apperror.TooLarge(fmt.Sprintf("File exceeds the %d byte limit", h.maxBytes)))
			return
		}
		c.Error(apperror.BadRequest("A resume file is required in the 'file' field"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(fmt.Errorf("open upload: %w", err)))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.Error(apperror.Internal(fmt.Errorf("read upload: %w", err)))
		return
	}

	result, err := h.uploadUC.UploadResume(c.Request.Context(), domain.UploadedFile{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume processed successfully", result)
}
