package domain

import (
	"context"
	"errors"
)

var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrFileRejected     = errors.New("file rejected")
	ErrFileInfected     = errors.New("file failed malware scan")
	ErrExtractionFailed = errors.New("could not extract text from file")
)

// UploadedFile is a resume file received from a client.
type UploadedFile struct {
	Filename string
	Data     []byte
}

type UploadResult struct {
	Filename    string       `json:"filename"`
	ContentType string       `json:"content_type"`
	Size        int          `json:"size"`
	Text        string       `json:"text"`
	Resume      ResumeRecord `json:"resume"`
	StorageKey  string       `json:"storage_key,omitempty"`
}

// ObjectStore archives uploaded files. Put returns the key the object was stored under.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type UploadUsecase interface {
	UploadResume(ctx context.Context, file UploadedFile) (*UploadResult, error)
}
