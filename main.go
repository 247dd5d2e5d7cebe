package main

import (
	"fmt"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/samarthpatel2005/portfolio/internal/content"
	"github.com/samarthpatel2005/portfolio/internal/logging"
)

func main() {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		l := logging.WithComponent("config")
		l.Fatal().Err(err).Msg("load config")
	}
	logging.Configure(logging.Config{Level: cfg.LogLevel})
	logger := logging.WithComponent("http")

	salt, err := newSalt()
	if err != nil {
		logger.Fatal().Err(err).Msg("generate client hash salt")
	}

	gin.SetMode(cfg.GinMode)
	r, err := newRouter(cfg, logger, salt)
	if err != nil {
		logger.Fatal().Err(err).Msg("build router")
	}

	logger.Info().Str("port", cfg.Port).Str("mode", cfg.GinMode).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(cfg Config, logger zerolog.Logger, salt string) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger, salt))
	r.SetHTMLTemplate(tmpl)

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.Static("/static", cfg.StaticDir)
	}

	setupRoutes(r, content.Load())
	return r, nil
}

func setupRoutes(r *gin.Engine, snap content.Snapshot) {
	// Home page
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", snap)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/content", func(c *gin.Context) {
		respond(c, http.StatusOK, snap)
	})
	api.GET("/site", func(c *gin.Context) {
		respond(c, http.StatusOK, snap.Site)
	})
	api.GET("/navigation", func(c *gin.Context) {
		respond(c, http.StatusOK, snap.Navigation)
	})
	api.GET("/tech", func(c *gin.Context) {
		if c.Query("by") == "key" {
			respond(c, http.StatusOK, content.TechCategoryMap())
			return
		}
		respond(c, http.StatusOK, snap.TechCategories)
	})
	api.GET("/tech/:key", func(c *gin.Context) {
		key := c.Param("key")
		cat, ok := content.LookupTechCategory(key)
		if !ok {
			respond(c, http.StatusNotFound, gin.H{"error": "unknown tech category: " + key})
			return
		}
		respond(c, http.StatusOK, cat)
	})
	api.GET("/expertise", func(c *gin.Context) {
		respond(c, http.StatusOK, snap.ExpertiseAreas)
	})
	api.GET("/social", func(c *gin.Context) {
		respond(c, http.StatusOK, snap.SocialLinks)
	})
}

// respond writes v as JSON, or YAML when ?format=yaml.
func respond(c *gin.Context, code int, v any) {
	if c.Query("format") == "yaml" {
		c.YAML(code, v)
		return
	}
	c.JSON(code, v)
}
