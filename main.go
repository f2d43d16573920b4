package main

import (
	"context"
	"log"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/commercegrid/mediabridge/biz/handler"
	"github.com/commercegrid/mediabridge/biz/middleware"
	"github.com/commercegrid/mediabridge/biz/router"
	"github.com/commercegrid/mediabridge/biz/service"
	"github.com/commercegrid/mediabridge/pkg/config"
	"github.com/commercegrid/mediabridge/pkg/database"
	"github.com/commercegrid/mediabridge/pkg/storage"
	"github.com/commercegrid/mediabridge/pkg/storage/local"
	"github.com/commercegrid/mediabridge/pkg/storage/s3"
	"github.com/commercegrid/mediabridge/pkg/validator"

	"github.com/commercegrid/mediabridge/biz/dal/model"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&model.Asset{}, &model.Setting{}); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	localStore, err := local.New(cfg.Storage.Local.MediaDir, cfg.Storage.Local.PublicPrefix)
	if err != nil {
		log.Fatalf("init local storage: %v", err)
	}

	// The cloud platform stays nil without credentials; operations that
	// resolve to it then fail with an explicit configuration error.
	var cloudStore storage.Storage
	cloudBaseURL := ""
	if cfg.Storage.S3.Bucket != "" {
		s3Store, err := s3.New(s3.Config{
			Endpoint:      cfg.Storage.S3.Endpoint,
			Region:        cfg.Storage.S3.Region,
			Bucket:        cfg.Storage.S3.Bucket,
			AccessKey:     cfg.Storage.S3.AccessKey,
			SecretKey:     cfg.Storage.S3.SecretKey,
			PathStyle:     cfg.Storage.S3.PathStyle,
			PublicBaseURL: cfg.Storage.S3.PublicBaseURL,
		})
		if err != nil {
			hlog.Warnf("cloud storage unavailable: %v", err)
		} else {
			cloudStore = s3Store
			cloudBaseURL = s3Store.PublicBaseURL()
		}
	}

	svc := service.NewService(db, service.Deps{
		Local:        localStore,
		Cloud:        cloudStore,
		LocalPrefix:  cfg.Storage.Local.PublicPrefix,
		CloudBaseURL: cloudBaseURL,
		Resolver: service.ResolverConfig{
			CloudRuntime: cfg.Storage.CloudRuntime,
			DeployTarget: cfg.Storage.DeployTarget,
		},
		Upload: validator.FromLimits(cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
	})

	if err := svc.EnsureDefaultSettings(context.Background()); err != nil {
		log.Fatalf("seed settings: %v", err)
	}

	h := server.Default(server.WithHostPorts(cfg.Server.Address))
	h.Use(middleware.Recovery())
	h.Use(middleware.Logging())
	h.Use(middleware.CORS(&cfg.CORS))

	router.RegisterMediaRoutes(h,
		handler.NewMediaHandler(svc, cfg.Storage.Local.MediaDir),
		handler.NewSettingsHandler(svc),
	)

	hlog.Infof("mediabridge listening on %s", cfg.Server.Address)
	h.Spin()
}
