// Package youtube implements the YouTube upload adapter and the pieces of
// the Google OAuth flow specific to YouTube connections.
package youtube

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/jekoram/reelshorter/domain/dto"
	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
	"github.com/jekoram/reelshorter/infrastructure/logger"
)

// Shorts are uploaded with a fixed category and public visibility.
const categoryPeopleAndBlogs = "22"

// Uploader publishes videos to YouTube using broker-supplied credentials.
type Uploader struct {
	broker repository.ICredentialBroker
	// newService is swappable in tests; defaults to the real API client.
	newService func(ctx context.Context, token string) (*yt.Service, error)
}

func NewUploader(broker repository.ICredentialBroker) repository.IUploader {
	return &Uploader{
		broker:     broker,
		newService: newYouTubeService,
	}
}

func newYouTubeService(ctx context.Context, accessToken string) (*yt.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	return yt.NewService(ctx, option.WithTokenSource(ts))
}

// Upload sends the file through the videos.insert media-upload protocol and
// returns the canonical shorts URL derived from the new video id.
func (u *Uploader) Upload(ctx context.Context, userID string, in *dto.UploadInput) (*dto.UploadResult, error) {
	cred, err := u.broker.GetLiveCredential(ctx, userID, model.PlatformYouTube)
	if err != nil {
		return nil, err
	}

	service, err := u.newService(ctx, cred.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	video := &yt.Video{
		Snippet: &yt.VideoSnippet{
			Title:       in.Title,
			Description: in.Description,
			CategoryId:  categoryPeopleAndBlogs,
		},
		Status: &yt.VideoStatus{
			PrivacyStatus:           "public",
			SelfDeclaredMadeForKids: false,
			ForceSendFields:         []string{"SelfDeclaredMadeForKids"},
		},
	}

	call := service.Videos.Insert([]string{"snippet", "status"}, video).
		Media(bytes.NewReader(in.File), googleapi.ContentType(in.MimeType))

	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"video_id": response.Id,
		"user_id":  userID,
	}).Info("YouTube upload completed")

	return &dto.UploadResult{
		VideoID: response.Id,
		URL:     WatchURL(response.Id),
	}, nil
}

// WatchURL is the canonical shorts link for an uploaded video id.
func WatchURL(videoID string) string {
	return fmt.Sprintf("https://youtube.com/shorts/%s", videoID)
}
