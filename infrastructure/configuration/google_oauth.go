package configuration

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	youtube "google.golang.org/api/youtube/v3"
)

// NewGoogleOAuth builds the oauth2 client config for the YouTube connection
// flow. Constructed once at startup from the injected Config; there is no
// lazily cached process-global credential loader.
func NewGoogleOAuth(g Google) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		RedirectURL:  g.RedirectURL,
		Scopes: []string{
			youtube.YoutubeUploadScope,
			youtube.YoutubeReadonlyScope,
		},
		Endpoint: google.Endpoint,
	}
}
