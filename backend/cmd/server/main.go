package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"sahayak/backend/internal/advisor"
	"sahayak/backend/internal/insights"
	"sahayak/backend/internal/knowledge"
	"sahayak/backend/internal/mirror"
	"sahayak/backend/internal/seed"
	"sahayak/backend/pkg/config"
	"sahayak/backend/pkg/logger"
	"go.uber.org/zap"
)

const mirrorTimeout = 30 * time.Second

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Sahayak API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Load seed data once for the raw-record endpoints. A malformed seed
	// document is a fatal configuration error.
	data, err := seed.Load(cfg.SeedDataPath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	// The knowledge graph service re-reads the seed file on rebuild
	kgService := knowledge.NewService(func() (*seed.Data, error) {
		return seed.Load(cfg.SeedDataPath)
	})

	// Neo4j mirror is optional and best-effort: a missing or unreachable
	// mirror never blocks the in-memory graph
	var mirrorRepo *mirror.Repository
	if cfg.HasNeo4j() {
		driver, err := neo4j.NewDriverWithContext(
			cfg.Neo4jURI,
			neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
		)
		if err != nil {
			log.Warn("Failed to create Neo4j driver, mirror disabled", zap.Error(err))
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
			if err := driver.VerifyConnectivity(ctx); err != nil {
				log.Warn("Neo4j not reachable, mirror disabled", zap.Error(err))
				_ = driver.Close(ctx)
			} else {
				mirrorRepo = mirror.NewRepository(driver, cfg.Neo4jDatabase)
				defer mirrorRepo.Close()
				log.Info("Connected to Neo4j mirror", zap.String("uri", cfg.Neo4jURI))

				if err := mirrorRepo.Sync(ctx, data, false); err != nil {
					log.Warn("Startup mirror sync failed", zap.Error(err))
				}
			}
			cancel()
		}
	} else {
		log.Info("Neo4j not configured, using in-memory knowledge graph only")
	}

	adv := advisor.New(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, kgService)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Sahayak API"})
	})

	// Root status
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Sahayak API",
			"version": "1.0.0",
			"status":  "running",
			"config":  cfg.Status(),
			"endpoints": gin.H{
				"chat":          "/api/chat",
				"dashboard":     "/api/dashboard",
				"opportunities": "/api/opportunities",
				"search":        "/api/search",
				"route_map":     "/api/route-map",
				"graph_stats":   "/api/graph/stats",
				"graph_sync":    "/api/graph/sync",
			},
		})
	})

	api := router.Group("/api")
	{
		// GraphRAG chat with source citations
		api.POST("/chat", func(c *gin.Context) {
			var req struct {
				Message        string `json:"message" binding:"required"`
				ConversationID string `json:"conversation_id"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			answer, err := adv.Chat(c.Request.Context(), req.Message)
			if err != nil {
				log.Error("Failed to answer chat message", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"success":      true,
				"answer":       answer.Text,
				"sources":      answer.Sources,
				"context_used": answer.ContextUsed,
				"graph_stats":  answer.Metrics,
			})
		})

		// Dashboard insights
		api.GET("/dashboard", func(c *gin.Context) {
			g, err := kgService.Graph()
			if err != nil {
				log.Error("Failed to build knowledge graph", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build insights"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    insights.BuildSummary(data, g),
			})
		})

		// Opportunity listing with optional filters
		api.GET("/opportunities", func(c *gin.Context) {
			opportunities := data.FilterOpportunities(c.Query("sector"), c.Query("opp_type"))
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    opportunities,
				"total":   len(opportunities),
			})
		})

		// Demo founder profile for pre-filling application forms
		api.GET("/user-profile", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    data.UserProfile,
			})
		})

		// Mock application submission
		api.POST("/apply", func(c *gin.Context) {
			var req struct {
				OpportunityID  string `json:"opportunity_id" binding:"required"`
				ApplicantName  string `json:"applicant_name" binding:"required"`
				ApplicantEmail string `json:"applicant_email" binding:"required"`
				StartupName    string `json:"startup_name" binding:"required"`
				Pitch          string `json:"pitch" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			applicationID := "APP-" + strings.ToUpper(uuid.NewString()[:8])
			c.JSON(http.StatusOK, gin.H{
				"success":        true,
				"message":        fmt.Sprintf("Application submitted successfully for opportunity %s. You will receive a confirmation email at %s.", req.OpportunityID, req.ApplicantEmail),
				"application_id": applicationID,
			})
		})

		// Keyword search across all seed record kinds
		api.GET("/search", func(c *gin.Context) {
			q := c.Query("q")
			if q == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
				return
			}
			results := data.SearchAll(q)
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    results,
				"total":   len(results.Investors) + len(results.Schemes) + len(results.Opportunities),
			})
		})

		// Stage-specific funding route
		api.GET("/route-map", func(c *gin.Context) {
			stage := c.DefaultQuery("stage", "idea")
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"stage":   stage,
				"data":    data.FundingRoute(stage),
			})
		})

		// Knowledge graph statistics (mirror when configured, else in-memory)
		api.GET("/graph/stats", func(c *gin.Context) {
			if mirrorRepo != nil {
				ctx, cancel := context.WithTimeout(c.Request.Context(), mirrorTimeout)
				defer cancel()
				stats, err := mirrorRepo.GraphStats(ctx)
				if err == nil {
					c.JSON(http.StatusOK, stats)
					return
				}
				log.Warn("Mirror stats failed, falling back to in-memory graph", zap.Error(err))
			}

			g, err := kgService.Graph()
			if err != nil {
				log.Error("Failed to build knowledge graph", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
				return
			}
			c.JSON(http.StatusOK, g.Stats())
		})

		// Forced mirror resync
		api.POST("/graph/sync", func(c *gin.Context) {
			if mirrorRepo == nil {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": "Neo4j not configured"})
				return
			}

			ctx, cancel := context.WithTimeout(c.Request.Context(), mirrorTimeout)
			defer cancel()

			if err := mirrorRepo.Sync(ctx, data, true); err != nil {
				log.Error("Mirror sync failed", zap.Error(err))
				c.JSON(http.StatusOK, gin.H{"success": false, "message": "Sync failed"})
				return
			}

			stats, _ := mirrorRepo.GraphStats(ctx)
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Knowledge graph synced to Neo4j",
				"stats":   stats,
			})
		})
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
