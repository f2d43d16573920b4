package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/commercegrid/mediabridge/biz/handler"
)

// RegisterMediaRoutes configures HTTP routes for the media service.
func RegisterMediaRoutes(r *server.Hertz, m *handler.MediaHandler, s *handler.SettingsHandler) {
	if m == nil || s == nil {
		return
	}

	v1 := r.Group("/api/v1")

	assets := v1.Group("/assets")
	assets.POST("/upload", m.UploadAsset)
	assets.DELETE("", m.DeleteAsset)
	assets.POST("/migrate", m.MigrateAsset)
	assets.GET("/files", m.ListFiles)
	assets.GET("/directories", m.ListDirectories)
	assets.GET("/directories/:id", m.GetDirectory)

	settings := v1.Group("/settings")
	settings.GET("/:group", s.ListGroup)
	settings.GET("/:group/:key", s.GetSetting)
	settings.PUT("/:group/:key", s.UpdateSetting)

	r.GET("/media/*filepath", m.ServeMedia)
	r.GET("/ping", handler.Ping)
}
