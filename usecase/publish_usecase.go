package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jekoram/reelshorter/domain/dto"
	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
	"github.com/jekoram/reelshorter/infrastructure/logger"
)

// ErrValidation marks pre-flight input failures. They are reported before
// any platform is touched and before any log row is written.
var ErrValidation = errors.New("validation failed")

// File constraints enforced before fan-out. A file passes the format check
// when EITHER its MIME type OR its extension matches: browsers sometimes
// report an empty or wrong MIME type.
const maxFileSize = 499 * 1024 * 1024

var allowedMimeTypes = map[string]struct{}{
	"video/mp4":       {},
	"video/quicktime": {},
	"video/webm":      {},
}

var allowedExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".webm": {},
}

// Aggregate message, one of three fixed categories.
const (
	msgAllPublished    = "Published to all platforms."
	msgSomePublished   = "Published to some platforms."
	msgNonePublished   = "Publishing failed on every platform."
	defaultUploadMime  = "video/mp4"
	defaultHistorySize = 20
	maxHistorySize     = 100
)

// IPublishUsecase fans one upload out across the requested platforms and
// serves the publish history.
type IPublishUsecase interface {
	Publish(ctx context.Context, userID string, req *dto.PublishRequest) (*dto.PublishResponse, error)
	History(ctx context.Context, userID string, page, limit int) (*dto.PublishLogListResponse, error)
}

type publishUsecase struct {
	uploaders map[model.Platform]repository.IUploader
	logRepo   repository.IPublishLog
}

func NewPublishUsecase(uploaders map[model.Platform]repository.IUploader, logRepo repository.IPublishLog) IPublishUsecase {
	return &publishUsecase{uploaders: uploaders, logRepo: logRepo}
}

// Publish validates the request, then dispatches to each requested
// platform's adapter sequentially in request order. Platform attempts are
// isolated: a failure is recorded and the loop moves on. Exactly one log
// row is appended per attempt, after the attempt resolves and before the
// next platform starts. The aggregate uses any-success semantics.
func (u *publishUsecase) Publish(ctx context.Context, userID string, req *dto.PublishRequest) (*dto.PublishResponse, error) {
	if err := validatePublishRequest(req); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = defaultUploadMime
	}

	results := make([]dto.PlatformResult, 0, len(req.Platforms))
	for _, raw := range req.Platforms {
		platform, known := model.ParsePlatform(raw)
		uploader, registered := u.uploaders[platform]

		entry := &model.PublishLog{
			UserID:     userID,
			Platform:   platform,
			VideoTitle: title,
		}
		result := dto.PlatformResult{Platform: platform.String()}

		if !known || !registered {
			msg := fmt.Sprintf("%s: %s", model.ErrUnsupportedPlatform.Error(), platform)
			entry.Status = model.PublishStatusFailed
			entry.ErrorMessage = &msg
			result.Error = msg
		} else if out, err := uploader.Upload(ctx, userID, &dto.UploadInput{
			Title:       title,
			Description: description,
			File:        req.File,
			MimeType:    mimeType,
		}); err != nil {
			msg := err.Error()
			entry.Status = model.PublishStatusFailed
			entry.ErrorMessage = &msg
			result.Error = msg
			logger.GetLogger().WithFields(map[string]interface{}{
				"user_id":  userID,
				"platform": platform.String(),
				"error":    err,
			}).Warn("platform upload failed")
		} else {
			entry.Status = model.PublishStatusSuccess
			entry.PlatformVideoID = &out.VideoID
			entry.PlatformURL = &out.URL
			result.Success = true
			result.URL = out.URL
		}

		// The audit trail is the only durable outcome record; a failed
		// append is fatal for the whole call.
		if err := u.logRepo.Append(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to record publish log: %w", err)
		}
		results = append(results, result)
	}

	allSuccess := true
	anySuccess := false
	for _, r := range results {
		if r.Success {
			anySuccess = true
		} else {
			allSuccess = false
		}
	}
	message := msgNonePublished
	if allSuccess {
		message = msgAllPublished
	} else if anySuccess {
		message = msgSomePublished
	}

	return &dto.PublishResponse{
		Success: anySuccess,
		Results: results,
		Message: message,
	}, nil
}

func validatePublishRequest(req *dto.PublishRequest) error {
	if req == nil || len(req.File) == 0 {
		return fmt.Errorf("%w: no file provided", ErrValidation)
	}
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(req.Platforms) == 0 {
		return fmt.Errorf("%w: select at least one platform", ErrValidation)
	}
	if int64(len(req.File)) > maxFileSize {
		return fmt.Errorf("%w: file too large (max 499MB)", ErrValidation)
	}

	ext := strings.ToLower(filepath.Ext(req.FileName))
	_, validType := allowedMimeTypes[strings.ToLower(req.MimeType)]
	_, validExt := allowedExtensions[ext]
	if !validType && !validExt {
		return fmt.Errorf("%w: unsupported file format (MP4, MOV and WebM only)", ErrValidation)
	}
	return nil
}

// History returns one page of the user's publish log, newest first.
func (u *publishUsecase) History(ctx context.Context, userID string, page, limit int) (*dto.PublishLogListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultHistorySize
	}
	if limit > maxHistorySize {
		limit = maxHistorySize
	}
	offset := (page - 1) * limit

	logs, total, err := u.logRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list publish logs: %w", err)
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.PublishLogListResponse{
		Logs: logs,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}
