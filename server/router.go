package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jekoram/reelshorter/domain/repository"
	httpHandler "github.com/jekoram/reelshorter/interfaces/http"
	"github.com/jekoram/reelshorter/interfaces/middleware"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	publishHandler httpHandler.IPublishHandler,
	connectionHandler httpHandler.IConnectionHandler,
	youtubeOAuthHandler httpHandler.IYouTubeOAuthHandler,
	userRepository repository.IUser,
	secretKey string,
	frontendBaseURL string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendBaseURL, "http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", userHandler.Login)
	router.POST("/register", userHandler.Register)

	// Hit by Google's redirect; the user id travels in the state parameter.
	router.GET("/auth/youtube/callback", youtubeOAuthHandler.HandleCallback)

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.Use(middleware.Auth(userRepository, secretKey))

	api.POST("/publish", publishHandler.Publish)
	api.GET("/logs", publishHandler.Logs)
	api.GET("/connections", connectionHandler.List)
	api.DELETE("/connections", connectionHandler.Disconnect)
	api.GET("/oauth/youtube", youtubeOAuthHandler.GetAuthURL)

	return router
}
