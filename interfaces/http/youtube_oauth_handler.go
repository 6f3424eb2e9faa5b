package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/infrastructure/clients/youtube"
	"github.com/jekoram/reelshorter/infrastructure/logger"
	"github.com/jekoram/reelshorter/usecase"
)

type IYouTubeOAuthHandler interface {
	GetAuthURL(c *gin.Context)
	HandleCallback(c *gin.Context)
}

// YouTubeOAuthHandler drives the YouTube connect flow: it hands the UI an
// authorization URL and turns the provider callback into a stored connection.
type YouTubeOAuthHandler struct {
	oauthConfig       *oauth2.Config
	connectionUsecase usecase.IConnectionUsecase
	frontendBaseURL   string
}

func NewYouTubeOAuthHandler(oauthConfig *oauth2.Config, connectionUsecase usecase.IConnectionUsecase, frontendBaseURL string) IYouTubeOAuthHandler {
	return &YouTubeOAuthHandler{
		oauthConfig:       oauthConfig,
		connectionUsecase: connectionUsecase,
		frontendBaseURL:   frontendBaseURL,
	}
}

// GetAuthURL handles GET /api/oauth/youtube (authenticated). The state
// parameter carries the user id so the public callback can attribute the
// grant.
func (h *YouTubeOAuthHandler) GetAuthURL(c *gin.Context) {
	userID := c.GetString("user_id")

	authURL := h.oauthConfig.AuthCodeURL(
		userID,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)

	c.JSON(http.StatusOK, gin.H{"auth_url": authURL})
}

// HandleCallback handles GET /auth/youtube/callback (public, hit by Google's
// redirect). It always ends in a browser redirect back to the frontend.
func (h *YouTubeOAuthHandler) HandleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		logger.GetLogger().WithField("oauth_error", errParam).Warn("YouTube authorization denied")
		h.redirect(c, "error=youtube_denied")
		return
	}

	code := c.Query("code")
	userID := c.Query("state")
	if code == "" || userID == "" {
		h.redirect(c, "error=youtube_failed")
		return
	}

	token, err := h.oauthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while exchanging authorization code")
		h.redirect(c, "error=youtube_failed")
		return
	}

	channel, err := youtube.FetchMyChannel(c.Request.Context(), h.oauthConfig.TokenSource(c.Request.Context(), token))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching channel info")
		h.redirect(c, "error=youtube_failed")
		return
	}

	grant := &model.OAuthGrant{
		Platform:         model.PlatformYouTube,
		AccessToken:      token.AccessToken,
		RefreshToken:     token.RefreshToken,
		PlatformUserID:   channel.ID,
		PlatformUsername: channel.Title,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry.UTC().Truncate(time.Second)
		grant.ExpiresAt = &expiry
	}

	if err := h.connectionUsecase.SaveGrant(c.Request.Context(), userID, grant); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while saving connection")
		h.redirect(c, "error=youtube_failed")
		return
	}

	h.redirect(c, "success=youtube")
}

func (h *YouTubeOAuthHandler) redirect(c *gin.Context, query string) {
	c.Redirect(http.StatusFound, h.frontendBaseURL+"/dashboard/connections?"+query)
}
