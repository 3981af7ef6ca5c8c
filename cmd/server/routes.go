package main

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/api"
	adminapi "github.com/markaz-app/markaz/internal/http/api/admin/endpoints"
	publicapi "github.com/markaz-app/markaz/internal/http/api/public/endpoints"
	"github.com/markaz-app/markaz/internal/http/middleware"
	"github.com/markaz-app/markaz/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, storageSystem storage.Storage, tmpl *template.Template) {
	r.SetHTMLTemplate(tmpl)

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	metrics, err := middleware.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register HTTP metrics")
	}
	r.Use(metrics.Handler())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// public reading surface
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		publicapi.SectionsModule(),
		publicapi.PublicLibraryModule(store),
		publicapi.PublicPrayerModule(store),
		publicapi.PublicTopicsModule(store),
		publicapi.PublicKidsModule(store),
		publicapi.PublicMediaModule(store),
		publicapi.BoardDeviceModule(store),
	)

	// admin auth endpoints run without the JWT gate
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		adminapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminapi.AuthSessionModule(env.SecretKey, store),
		adminapi.LibraryModule(store),
		adminapi.KidsModule(store),
		adminapi.MediaModule(store, storageSystem),
		adminapi.PrayerModule(store),
		adminapi.BoardModule(store),
	)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
