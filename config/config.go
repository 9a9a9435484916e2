package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port                string              `mapstructure:"port"`
	Mode                string              `mapstructure:"mode"`
	Store               string              `mapstructure:"store"`
	UploadDir           string              `mapstructure:"upload_dir"`
	MaxUploadSize       int64               `mapstructure:"max_upload_size"`
	Cors                CorsConfig          `mapstructure:"cors"`
	Mongo               MongoConfig         `mapstructure:"mongo"`
	Redis               RedisConfig         `mapstructure:"redis"`
	WeaviateStoreConfig WeaviateStoreConfig `mapstructure:"weaviate_store_config"`
	Auth                AuthConfig          `mapstructure:"auth"`
}

type CorsConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type MongoConfig struct {
	URI                string `mapstructure:"uri"`
	Database           string `mapstructure:"database"`
	SyllabiCollection  string `mapstructure:"syllabi_collection"`
	SectionsCollection string `mapstructure:"sections_collection"`
}

// RedisConfig enables the course cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// WeaviateStoreConfig enables the topic search index when Host is set.
type WeaviateStoreConfig struct {
	Host     string `mapstructure:"host"`
	APIKey   string `mapstructure:"api_key"`
	Text2Vec string `mapstructure:"text2vec"`
}

// AuthConfig protects the upload route when UploadSecret is set.
type AuthConfig struct {
	UploadSecret string `mapstructure:"upload_secret"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("mode", "development")
	v.SetDefault("store", StoreMongo)
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("max_upload_size", 10<<20)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("mongo.uri", "mongodb://localhost:27017/")
	v.SetDefault("mongo.database", "docextractor")
	v.SetDefault("mongo.syllabi_collection", "syllabi")
	v.SetDefault("mongo.sections_collection", "othersections")
	v.SetDefault("redis.ttl", 10*time.Minute)
	v.SetDefault("weaviate_store_config.text2vec", "text2vec-transformers")
}

// LoadConfig reads the YAML file at configPath, if any, and applies
// environment overrides on top of it.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.BindEnv("mongo.uri", "MONGODB_URI")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("weaviate_store_config.api_key", "WEAVIATE_APIKEY")
	v.BindEnv("auth.upload_secret", "JWT_SECRET_UPLOAD")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	switch config.Store {
	case StoreMongo, StoreMemory:
	default:
		return nil, fmt.Errorf("unknown store %q", config.Store)
	}
	return &config, nil
}
