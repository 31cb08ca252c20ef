package security_test

import (
	"testing"

	"ats-resume-scorer/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeFile(t *testing.T) {
	t.Run("PDF", func(t *testing.T) {
		res := security.ValidateResumeFile("CV.PDF", []byte("%PDF-1.7\n1 0 obj"))
		require.True(t, res.Valid, res.Error)
		assert.Equal(t, ".pdf", res.Extension)
		assert.Equal(t, security.ContentTypePDF, res.ContentType)
		assert.NoError(t, res.Err())
	})

	t.Run("DOCX", func(t *testing.T) {
		res := security.ValidateResumeFile("cv.docx", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00})
		require.True(t, res.Valid, res.Error)
		assert.Equal(t, security.ContentTypeDOCX, res.ContentType)
	})

	t.Run("Text", func(t *testing.T) {
		res := security.ValidateResumeFile("cv.txt", []byte("Jane Doe\nEngineer"))
		require.True(t, res.Valid, res.Error)
		assert.Equal(t, security.ContentTypeText, res.ContentType)
	})

	t.Run("Spoofed PDF", func(t *testing.T) {
		res := security.ValidateResumeFile("cv.pdf", []byte("just text pretending"))
		assert.False(t, res.Valid)
		assert.ErrorIs(t, res.Err(), security.ErrFileRejected)
		assert.Contains(t, res.Error, "does not match")
	})

	t.Run("Disallowed extension", func(t *testing.T) {
		res := security.ValidateResumeFile("cv.exe", []byte("MZ\x90\x00"))
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, ".exe")
	})

	t.Run("No extension", func(t *testing.T) {
		res := security.ValidateResumeFile("resume", []byte("text"))
		assert.Equal(t, "file has no extension", res.Error)
	})

	t.Run("Binary posing as text", func(t *testing.T) {
		res := security.ValidateResumeFile("cv.txt", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
		assert.False(t, res.Valid)
	})
}
