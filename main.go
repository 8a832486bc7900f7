package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatal("failed to migrate schema: ", err)
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server listening")
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
