package youtube

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// ChannelInfo is the minimal channel identity captured at connect time.
type ChannelInfo struct {
	ID    string
	Title string
}

// FetchMyChannel looks up the authenticated user's channel. Used by the
// OAuth callback to label the connection with the external account.
func FetchMyChannel(ctx context.Context, ts oauth2.TokenSource) (*ChannelInfo, error) {
	service, err := yt.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	response, err := service.Channels.List([]string{"snippet"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get my channel: %w", err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("no channel found for authenticated user")
	}

	channel := response.Items[0]
	return &ChannelInfo{ID: channel.Id, Title: channel.Snippet.Title}, nil
}
