package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	UploadDir string
	JWTSecret string
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration once at startup. A .env file is honored when
// present but is not required.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	return &Config{
		Port:      get("PORT", "3000"),
		MongoURI:  get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   get("MONGO_DB", "prerana_ghs"),
		UploadDir: get("UPLOAD_DIR", "uploads"),
		JWTSecret: get("JWT_SECRET", "prerana-portal-secret-key"),
	}
}
