package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Seed data
	SeedDataPath string

	// Neo4j mirror (optional)
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string

	// AI
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("ENV", "development"),
		SeedDataPath:  getEnv("SEED_DATA_PATH", "backend/data/seed_data.json"),
		Neo4jURI:      getEnv("NEO4J_URI", ""),
		Neo4jUser:     getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword: getEnv("NEO4J_PASSWORD", ""),
		Neo4jDatabase: getEnv("NEO4J_DATABASE", "neo4j"),
		LLMBaseURL:    getEnv("LLM_BASE_URL", ""),
		LLMAPIKey:     getEnv("LLM_API_KEY", ""),
		LLMModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set.
// The Neo4j mirror and the LLM are optional collaborators; the seed data
// path is not.
func (c *Config) Validate() error {
	if c.SeedDataPath == "" {
		return fmt.Errorf("SEED_DATA_PATH is required")
	}
	if c.HasNeo4j() && c.Neo4jUser == "" {
		return fmt.Errorf("NEO4J_USER is required when NEO4J_URI is set")
	}
	return nil
}

// HasNeo4j returns true if the Neo4j mirror is configured
func (c *Config) HasNeo4j() bool {
	return c.Neo4jURI != "" && c.Neo4jPassword != ""
}

// HasLLM returns true if an LLM endpoint is configured
func (c *Config) HasLLM() bool {
	return c.LLMAPIKey != "" || c.LLMBaseURL != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Status reports which optional collaborators are configured
func (c *Config) Status() map[string]bool {
	return map[string]bool{
		"llm_configured":   c.HasLLM(),
		"neo4j_configured": c.HasNeo4j(),
		"debug_mode":       c.IsDevelopment(),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
