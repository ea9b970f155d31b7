package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Sahayak API"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "healthy", response["status"])
}

func TestChatEndpoint_InvalidRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mock endpoint
	router.POST("/api/chat", func(c *gin.Context) {
		var req struct {
			Message        string `json:"message" binding:"required"`
			ConversationID string `json:"conversation_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// Test missing message field
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/chat", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// conversation_id alone is not enough
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/chat", bytes.NewBuffer([]byte(`{"conversation_id":"abc"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyEndpoint_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mock endpoint
	router.POST("/api/apply", func(c *gin.Context) {
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
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"application_id": "APP-" + strings.ToUpper(uuid.NewString()[:8]),
		})
	})

	// Missing pitch
	w := httptest.NewRecorder()
	body := `{"opportunity_id":"agri_challenge","applicant_name":"Priya","applicant_email":"priya@terrayield.in","startup_name":"TerraYield"}`
	req, _ := http.NewRequest("POST", "/api/apply", bytes.NewBuffer([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Complete application
	w = httptest.NewRecorder()
	body = `{"opportunity_id":"agri_challenge","applicant_name":"Priya","applicant_email":"priya@terrayield.in","startup_name":"TerraYield","pitch":"Soil intelligence for smallholder farms"}`
	req, _ = http.NewRequest("POST", "/api/apply", bytes.NewBuffer([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	id, _ := response["application_id"].(string)
	assert.True(t, strings.HasPrefix(id, "APP-"))
	assert.Len(t, id, 12)
}

func TestSearchEndpoint_RequiresQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mock endpoint
	router.GET("/api/search", func(c *gin.Context) {
		if c.Query("q") == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/search?q=agritech", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteMapEndpoint_DefaultStage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mock endpoint
	router.GET("/api/route-map", func(c *gin.Context) {
		stage := c.DefaultQuery("stage", "idea")
		c.JSON(http.StatusOK, gin.H{"success": true, "stage": stage})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/route-map", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "idea", response["stage"])
}
