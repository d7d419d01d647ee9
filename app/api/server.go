package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the site engine with all routes configured
func NewServer(handler *Handler, staticDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
		SkipPaths: []string{"/health"},
	}))

	r.Use(gin.Recovery())

	r.SetHTMLTemplate(handler.renderer.Templates())

	setupRoutes(r, handler, staticDir)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, staticDir string) {
	if staticDir != "" {
		r.Static("/static", staticDir)
	}

	r.GET("/robots.txt", handler.GetRobots)
	r.GET("/health", handler.GetHealth)

	r.GET("/", handler.GetPage)
	r.GET("/:page", handler.GetPage)

	r.POST("/contact/:name", handler.PostContact)

	r.NoRoute(handler.NotFound)
}
