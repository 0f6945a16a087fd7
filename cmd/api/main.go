package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmkbeauty/salon-booking/internal/cache"
	"github.com/jmkbeauty/salon-booking/internal/config"
	dbpkg "github.com/jmkbeauty/salon-booking/internal/db"
	"github.com/jmkbeauty/salon-booking/internal/logging"
	"github.com/jmkbeauty/salon-booking/internal/metrics"
	"github.com/jmkbeauty/salon-booking/internal/routes"
	ucbooking "github.com/jmkbeauty/salon-booking/internal/usecase/booking"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	metrics.Register()

	db := dbpkg.NewDB(cfg, log)

	// Redis is optional; without it slot availability is computed
	// fresh on every request.
	var slotCache ucbooking.SlotCache
	rdb, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, slot cache disabled")
	} else if rdb != nil {
		slotCache = cache.NewSlotCache(rdb, cfg.SlotCacheTTL, log)
		log.Info().Str("addr", cfg.RedisAddr).Msg("slot cache enabled")
	}

	if cfg.LogFormat == "json" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, slotCache)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
