package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/garagehub/garage-api/internal/authz"
	"github.com/garagehub/garage-api/internal/config"
	dbpkg "github.com/garagehub/garage-api/internal/db"
	"github.com/garagehub/garage-api/internal/httperr"
	infraRepo "github.com/garagehub/garage-api/internal/infra/repository"
	"github.com/garagehub/garage-api/internal/middleware"
	"github.com/garagehub/garage-api/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	httperr.Init(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	db := dbpkg.NewDB(cfg)

	// The role catalog must be loaded before the first request is served.
	catalog := authz.NewCatalog(infraRepo.NewRoleGormRepository(db))
	if err := catalog.Load(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to load role catalog")
	}

	r := gin.Default()

	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, catalog)

	logrus.WithField("addr", cfg.Addr()).Info("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
