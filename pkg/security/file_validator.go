package security

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Canonical content types for accepted resume documents.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
)

var ErrFileRejected = errors.New("file rejected")

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Lowercased file extension
	DetectedMIME string // Sniffed MIME type
	ContentType  string // Canonical type the document should be parsed as
	Error        string // Reason when validation failed
}

// Err returns nil for valid files and an ErrFileRejected wrapper otherwise.
func (r FileValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrFileRejected, r.Error)
}

type documentRule struct {
	contentType string
	magic       [][]byte
	mimes       map[string]bool
}

var documentRules = map[string]documentRule{
	".pdf": {
		contentType: ContentTypePDF,
		magic:       [][]byte{[]byte("%PDF")},
		mimes:       map[string]bool{"application/pdf": true},
	},
	".docx": {
		contentType: ContentTypeDOCX,
		magic:       [][]byte{{0x50, 0x4B, 0x03, 0x04}}, // ZIP (PK..)
		// DOCX sniffs as zip, or as octet-stream when the archive has a data descriptor.
		mimes: map[string]bool{"application/zip": true, "application/octet-stream": true},
	},
	".txt": {
		contentType: ContentTypeText,
		mimes:       map[string]bool{"text/plain": true},
	},
}

// ValidateResumeFile runs three checks on an uploaded resume:
// extension whitelist, magic bytes, sniffed MIME whitelist.
func ValidateResumeFile(filename string, data []byte) FileValidationResult {
	result := FileValidationResult{DetectedMIME: sniff(data)}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	rule, ok := documentRules[ext]
	if !ok {
		result.Error = fmt.Sprintf("file extension not allowed: %s (allowed: %s)", ext, strings.Join(AllowedExtensions(), ", "))
		return result
	}

	if len(rule.magic) > 0 && !hasMagic(rule.magic, data) {
		result.Error = "file content does not match extension"
		return result
	}

	if ext == ".txt" && !utf8.Valid(data) {
		result.Error = "text file is not valid UTF-8"
		return result
	}

	if !rule.mimes[result.DetectedMIME] {
		result.Error = "MIME type not allowed: " + result.DetectedMIME
		return result
	}

	result.ContentType = rule.contentType
	result.Valid = true
	return result
}

// sniff returns the MIME type without parameters.
func sniff(data []byte) string {
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i != -1 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}

func hasMagic(signatures [][]byte, data []byte) bool {
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// AllowedExtensions lists accepted extensions in a stable order.
func AllowedExtensions() []string {
	return []string{".pdf", ".docx", ".txt"}
}
