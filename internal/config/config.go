package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	BcryptCost     int
	UploadDir      string
	MaxUploadBytes int64
	StorageDriver  string
	S3Bucket       string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	RequestTimeout time.Duration
	SaveRetries    int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "skillbridge"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		BcryptCost:     getInt("BCRYPT_COST", 10),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getInt("MAX_UPLOAD_BYTES", 8<<20)),
		StorageDriver:  getEnv("STORAGE_DRIVER", "disk"),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		SaveRetries:    getInt("SAVE_RETRIES", 3),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.StorageDriver == "s3" && cfg.S3Bucket == "" {
		log.Fatal("S3_BUCKET is required when STORAGE_DRIVER=s3")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
