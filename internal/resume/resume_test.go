package resume_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredJSON = `{
	"contact": {"name": "Jane Doe", "email": "jane@example.com", "linkedIn": "in/jane"},
	"summary": "Backend engineer",
	"experience": [{"company": "Acme", "position": "Engineer", "startDate": "01/2020", "endDate": "Present", "description": "Built APIs"}],
	"skills": ["Go"]
}`

func TestNormalize(t *testing.T) {
	n := resume.NewNormalizer()

	t.Run("Structured string is parsed", func(t *testing.T) {
		r := n.Normalize(structuredJSON, domain.FormatStructured)
		assert.Equal(t, "Jane Doe", r.Contact.Name)
		assert.Equal(t, "in/jane", r.Contact.LinkedIn)
		require.Len(t, r.Experience, 1)
		assert.Equal(t, "Acme", r.Experience[0].Company)
		assert.NotNil(t, r.Education)
		assert.Empty(t, r.Education)
	})

	t.Run("Structured object is parsed", func(t *testing.T) {
		var obj any
		require.NoError(t, json.Unmarshal([]byte(structuredJSON), &obj))
		r := n.Normalize(obj, domain.FormatStructured)
		assert.Equal(t, "Backend engineer", r.Summary)
		assert.Equal(t, []string{"Go"}, r.Skills)
	})

	t.Run("Broken structured input degrades to freeform", func(t *testing.T) {
		r := n.Normalize(`{"contact": "oops"`, domain.FormatStructured)
		assert.Equal(t, `{"contact": "oops"`, r.Summary)
		assert.Empty(t, r.Contact.Name)
		assert.NotNil(t, r.Experience)
		assert.NotNil(t, r.Skills)
	})

	t.Run("Wrong field types degrade to freeform", func(t *testing.T) {
		r := n.Normalize(`{"skills": "Go, Python"}`, domain.FormatStructured)
		assert.Equal(t, `{"skills": "Go, Python"}`, r.Summary)
	})

	t.Run("Freeform ignores JSON shape", func(t *testing.T) {
		r := n.Normalize(structuredJSON, domain.FormatFreeform)
		assert.Equal(t, structuredJSON, r.Summary)
		assert.Empty(t, r.Contact.Name)
	})

	t.Run("Missing format means freeform", func(t *testing.T) {
		r := n.Normalize("Plain resume text", "")
		assert.Equal(t, "Plain resume text", r.Summary)
		assert.Equal(t, []domain.ExperienceEntry{}, r.Experience)
		assert.Equal(t, []domain.EducationEntry{}, r.Education)
		assert.Equal(t, []string{}, r.Skills)
	})
}

func TestIsBlank(t *testing.T) {
	assert.True(t, resume.IsBlank(nil))
	assert.True(t, resume.IsBlank("   "))
	assert.True(t, resume.IsBlank(map[string]any{}))
	assert.False(t, resume.IsBlank("text"))
	assert.False(t, resume.IsBlank(map[string]any{"summary": "x"}))
}

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml":            `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtract(t *testing.T) {
	ex := resume.NewExtractor()
	ctx := context.Background()

	t.Run("Plain text", func(t *testing.T) {
		text, err := ex.Extract(ctx, "text/plain; charset=utf-8", []byte("Jane Doe  \r\nEngineer\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\nEngineer", text)
	})

	t.Run("DOCX paragraphs become lines", func(t *testing.T) {
		data := buildDocx(t, `<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Built APIs &amp; tools</w:t></w:r></w:p>`)
		text, err := ex.Extract(ctx, resume.MIMEDOCX, data)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\nBuilt APIs & tools", text)
	})

	t.Run("Unsupported type", func(t *testing.T) {
		_, err := ex.Extract(ctx, "image/png", []byte{0x89, 0x50})
		assert.True(t, errors.Is(err, resume.ErrUnsupportedType))
	})

	t.Run("Malformed PDF is an error, not a panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_, err := ex.Extract(ctx, resume.MIMEPDF, []byte("%PDF-1.4 garbage"))
			assert.Error(t, err)
		})
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := ex.Extract(cctx, resume.MIMEText, []byte("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
