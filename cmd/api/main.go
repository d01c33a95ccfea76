package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/navalha-app/agenda-api/internal/config"
	dbpkg "github.com/navalha-app/agenda-api/internal/db"
	"github.com/navalha-app/agenda-api/internal/logger"
	"github.com/navalha-app/agenda-api/internal/middleware"
	"github.com/navalha-app/agenda-api/internal/routes"
)

func main() {

	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Requests())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("servidor iniciado")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("falha ao iniciar servidor")
	}
}
