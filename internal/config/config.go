package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string
	BucketURL string
}

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	AdminEmail    string
	AdminPassword string

	S3 S3Config
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		S3: S3Config{
			Region:    os.Getenv("S3_REGION"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			BucketURL: os.Getenv("S3_BUCKET_URL"),
		},
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.S3.Bucket == "" {
		log.Fatal("S3_BUCKET is not set")
	}
	if cfg.S3.Region == "" {
		cfg.S3.Region = "us-east-1"
	}
	if cfg.S3.BucketURL == "" {
		cfg.S3.BucketURL = "https://" + cfg.S3.Bucket + ".s3.amazonaws.com"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@prospeo.local"
	}

	return cfg
}
