package usecase

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/pkg/apperror"
	"ats-resume-scorer/pkg/logger"
	"ats-resume-scorer/pkg/security"
	"ats-resume-scorer/pkg/security/antivirus"

	"github.com/google/uuid"
)

const DefaultUploadMaxBytes = 5 << 20

type uploadUsecase struct {
	scanner    antivirus.Scanner
	extractor  domain.TextExtractor
	normalizer domain.ResumeNormalizer
	store      domain.ObjectStore
	maxBytes   int64
}

// NewUploadUsecase builds the resume upload pipeline. store may be nil to skip archiving.
func NewUploadUsecase(scanner antivirus.Scanner, extractor domain.TextExtractor, normalizer domain.ResumeNormalizer, store domain.ObjectStore, maxBytes int64) domain.UploadUsecase {
	if scanner == nil {
		scanner = antivirus.NewNoOpScanner()
	}
	if maxBytes <= 0 {
		maxBytes = DefaultUploadMaxBytes
	}
	return &uploadUsecase{
		scanner:    scanner,
		extractor:  extractor,
		normalizer: normalizer,
		store:      store,
		maxBytes:   maxBytes,
	}
}

func (u *uploadUsecase) UploadResume(ctx context.Context, file domain.UploadedFile) (*domain.UploadResult, error) {
	if len(file.Data) == 0 {
		return nil, apperror.BadRequest("File is empty")
	}
	if int64(len(file.Data)) > u.maxBytes {
		return nil, apperror.New(http.StatusRequestEntityTooLarge, fmt.Sprintf("File exceeds the %d byte limit", u.maxBytes), domain.ErrFileTooLarge)
	}

	filename := filepath.Base(strings.ReplaceAll(file.Filename, "\\", "/"))
	requestID := domain.RequestIDFrom(ctx)

	check := security.ValidateResumeFile(filename, file.Data)
	if !check.Valid {
		security.DefaultLogger().LogUploadRejected(ctx, requestID, filename, check.Error)
		return nil, apperror.Unsupported("Unsupported file: "+check.Error, fmt.Errorf("%w: %w", domain.ErrFileRejected, check.Err()))
	}

	scan := u.scanner.Scan(ctx, filename, file.Data)
	if scan.Infected || scan.Error != nil {
		threat := scan.ThreatName
		if threat == "" && scan.Error == nil {
			threat = "unknown"
		}
		security.DefaultLogger().LogScanResult(ctx, requestID, filename, scan.ScannerName, threat, scan.Error)
		return nil, apperror.Unprocessable("File failed the malware scan", domain.ErrFileInfected)
	}

	text, err := u.extractor.Extract(ctx, check.ContentType, file.Data)
	if err != nil || strings.TrimSpace(text) == "" {
		if err == nil {
			err = fmt.Errorf("no text in document")
		}
		logger.Log.Warn("text extraction failed", "request_id", requestID, "content_type", check.ContentType, "error", err)
		return nil, apperror.Unprocessable("Could not extract text from file", fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err))
	}

	result := &domain.UploadResult{
		Filename:    filename,
		ContentType: check.ContentType,
		Size:        len(file.Data),
		Text:        text,
		Resume:      u.normalizer.Normalize(text, domain.FormatFreeform),
	}

	if u.store != nil {
		key := "resumes/" + uuid.NewString() + check.Extension
		location, err := u.store.Put(ctx, key, check.ContentType, file.Data)
		if err != nil {
			logger.Log.Error("failed to archive upload", "request_id", requestID, "key", key, "error", err)
		} else {
			result.StorageKey = location
		}
	}

	return result, nil
}
