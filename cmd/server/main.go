package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/posterapp/internal/api"
	"github.com/youruser/posterapp/internal/config"
	"github.com/youruser/posterapp/internal/util/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	closer := log.Setup(cfg.LogFile, cfg.Debug)
	defer closer.Close()

	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.MaxMultipartMemory = cfg.MaxUploadBytes()
	api.RegisterRoutes(r, api.New(cfg))

	log.Printf("corner image: %s (loaded per request, optional)", cfg.CornerImage)
	log.Println("starting server on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
