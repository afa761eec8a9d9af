package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings is the single immutable configuration object for the whole
// process. Core logic never reads the environment directly; everything it
// needs is resolved here, once, at startup.
type Settings struct {
	PostgresDSN     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string

	// Public URL construction: CDN-fronted when CDNDomain is set, otherwise
	// direct-to-bucket using S3Region. Never mixed per-key.
	S3Region  string
	CDNDomain string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	// Timeout budget applied to each external call (blob fetch, blob upload,
	// record write) made by the optimise pipeline.
	ExternalCallTimeout time.Duration

	// When true, `large` is re-encoded at its profile quality instead of
	// reusing the original bytes.
	ReencodeLarge bool

	// When > 0, the thumbnail path runs the byte-budget quality search with
	// this target instead of a single fixed-quality encode.
	ThumbnailTargetSizeKB int
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range []string{
		"POSTGRES_DSN",
		"POSTGRES_MAX_OPEN_CONNS",
		"POSTGRES_MAX_IDLE_CONNS",
		"POSTGRES_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"S3_BUCKET",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("S3_REGION", "eu-west-3")
	viper.SetDefault("EXTERNAL_CALL_TIMEOUT", 30)
	viper.SetDefault("THUMBNAIL_TARGET_SIZE_KB", 0)

	return &Settings{
		PostgresDSN:     viper.GetString("POSTGRES_DSN"),
		MaxOpenConns:    viper.GetInt("POSTGRES_MAX_OPEN_CONNS"),
		MaxIdleConns:    viper.GetInt("POSTGRES_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("POSTGRES_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		Bucket:         viper.GetString("S3_BUCKET"),

		S3Region:  viper.GetString("S3_REGION"),
		CDNDomain: viper.GetString("CDN_DOMAIN"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		JWTSecret: viper.GetString("JWT_SECRET"),

		ExternalCallTimeout:   time.Duration(viper.GetInt("EXTERNAL_CALL_TIMEOUT")) * time.Second,
		ReencodeLarge:         viper.GetBool("OPTIMISE_REENCODE_LARGE"),
		ThumbnailTargetSizeKB: viper.GetInt("THUMBNAIL_TARGET_SIZE_KB"),
	}, nil
}
