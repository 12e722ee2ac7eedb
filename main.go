package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"
	"github.com/robfig/cron/v3"

	"clubsite/config"
	"clubsite/content"
	"clubsite/handlers"
	"clubsite/monitoring"
	"clubsite/security"
	"clubsite/services"
	"clubsite/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis (optional content cache + rate limiter backend)
	redisClient := utils.NewRedisClient(cfg.RedisURL)
	if redisClient != nil {
		defer redisClient.Close()
	}

	cache := utils.NewCache(redisClient, cfg.CacheTTL)
	contentClient := content.NewClient(cfg, cache)

	// Initialize PubNub when form notifications are configured
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" && cfg.PubNubSubscribeKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey
		pn = pubnub.NewPubNub(pnConfig)
	}

	// Initialize services
	eventService := services.NewEventService(contentClient)
	galleryService := services.NewGalleryService(contentClient)
	notifyService := services.NewNotifyService(pn)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	formHandler := handlers.NewFormHandler(notifyService)
	rateLimiter := security.NewRateLimiter(redisClient, cfg.FormRateLimit, cfg.FormRateWindow)

	monitoring.NewMonitor()

	e := echo.New()
	e.Use(middleware.Recover())
	if cfg.Environment == "development" {
		e.Use(middleware.Logger())
	}

	// API routes
	api := e.Group("/api")
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/calendar", eventHandler.CalendarEvents)
	api.GET("/events/fallback", eventHandler.FallbackList)
	api.GET("/events/featured", eventHandler.FeaturedEvents)
	api.GET("/events/:slug", eventHandler.GetEvent)
	api.GET("/gallery", galleryHandler.GetGallery)
	api.GET("/posts", eventHandler.ListPosts)
	api.POST("/contact", formHandler.SubmitContact, rateLimiter.FormRateLimit())
	api.POST("/join", formHandler.SubmitJoin, rateLimiter.FormRateLimit())

	// Calendar subscription feed
	e.GET("/events/calendar.ics", eventHandler.ICSFeed)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		if err := utils.RedisHealthCheck(redisClient); err != nil {
			return c.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		if err := contentClient.Ping(c.Request().Context()); err != nil {
			return c.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(200, map[string]string{"status": "healthy"})
	})

	// Metrics server
	if cfg.EnableMetrics {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			log.Printf("Metrics server listening on :%s", cfg.MetricsPort)
			if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	// Periodic cache warmer keeps first page hits off the cold path
	if cfg.WarmCron != "" {
		warmer := cron.New()
		if _, err := warmer.AddFunc(cfg.WarmCron, func() {
			warmContent(eventService, galleryService)
		}); err != nil {
			log.Printf("Invalid WARM_CRON %q: %v", cfg.WarmCron, err)
		} else {
			warmer.Start()
			defer warmer.Stop()
			go warmContent(eventService, galleryService)
		}
	}

	// Start server
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: e}
	go handleShutdown(srv)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func warmContent(events *services.EventService, gallery *services.GalleryService) {
	ctx := context.Background()

	if _, err := events.Calendar(ctx); err != nil {
		log.Printf("Cache warm: events fetch failed: %v", err)
	}
	gallery.AlbumsWithPhotos(ctx)
}

// handleShutdown handles graceful shutdown
func handleShutdown(srv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
