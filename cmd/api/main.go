package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/school-scheduler/internal/config"
	"github.com/BruksfildServices01/school-scheduler/internal/extraction"
	"github.com/BruksfildServices01/school-scheduler/internal/logger"
	"github.com/BruksfildServices01/school-scheduler/internal/middleware"
	"github.com/BruksfildServices01/school-scheduler/internal/routes"
	"github.com/BruksfildServices01/school-scheduler/internal/session"
	"github.com/BruksfildServices01/school-scheduler/internal/snapshot"
	"github.com/BruksfildServices01/school-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	store := snapshot.NewRedisStore(snapshot.NewClient(cfg))
	loc := timezone.Location(cfg.Timezone)

	var source extraction.Source
	if db, err := extraction.NewDB(cfg); err != nil {
		// sem extração a sessão só sobe se houver snapshot salvo
		log.Error("extraction database unavailable", zap.Error(err))
	} else {
		source = extraction.NewGormSource(db)
	}

	state := session.NewState(log, store, loc)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	state.Bootstrap(ctx, source)
	cancel()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, state, cfg, log)

	log.Info("Server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
