package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"drillhub/config"
	"drillhub/controllers"
	"drillhub/models"
	"drillhub/services"
	"drillhub/tasks"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	gin.DefaultWriter = zerolog.ConsoleWriter{Out: os.Stdout}

	cfg, err := config.Load(os.Getenv("DRILLHUB_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := models.ConnectDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("utmzone", models.ZoneRule); err != nil {
			log.Fatal().Err(err).Msg("failed to register utmzone rule")
		}
	}

	h := &controllers.Handler{
		DB:        db,
		Media:     services.NewMediaStore(cfg.MediaRoot),
		Queue:     &tasks.Queue{Addr: cfg.RedisAddr},
		Delimiter: rune(cfg.CSVDelimiter[0]),
	}

	router := gin.New()
	router.Use(controllers.ZLogMiddleware(), gin.Recovery())

	// Project
	router.POST("/projects", h.ProjectCreate)
	router.GET("/projects", h.ProjectList)
	router.GET("/projects/:name", h.ProjectGet)
	router.DELETE("/projects/:name", h.ProjectDelete)

	// Drillhole
	router.POST("/drillholes", h.DrillholeCreate)
	router.GET("/drillholes", h.DrillholeList)
	router.GET("/drillholes/:hole_id", h.DrillholeGet)
	router.PATCH("/drillholes/:hole_id", h.DrillholeUpdate)
	router.DELETE("/drillholes/:hole_id", h.DrillholeDelete)

	// CSV imports
	router.POST("/import/samples", h.SampleImport)
	router.POST("/import/deviations", h.DeviationImport)
	router.POST("/import/lithology", h.LithologyImport)

	// Per-hole records
	router.GET("/drillholes/:hole_id/samples", h.SampleList)
	router.GET("/drillholes/:hole_id/deviations", h.DeviationList)
	router.GET("/drillholes/:hole_id/lithology", h.IntervalList)

	// Images
	router.POST("/drillholes/:hole_id/images", h.ImageUpload)
	router.GET("/drillholes/:hole_id/images", h.ImageList)
	router.POST("/drillholes/:hole_id/annotate", h.ImageAnnotate)

	// Lithology catalogue
	router.GET("/lithologies", h.LithologyList)
	router.POST("/lithologies", h.LithologyCreate)
	router.DELETE("/lithologies/:code", h.LithologyDelete)

	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("app failed to start")
	}
}
