package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// AppConfig 全局配置实例
var AppConfig *Config

// Config 应用配置结构
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Redis   RedisConfig   `yaml:"redis"`
	Cache   CacheConfig   `yaml:"cache"`
	Scraper ScraperConfig `yaml:"scraper"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"`
}

// DataConfig 数据目录配置
type DataConfig struct {
	EtsyDir    string `yaml:"etsy_dir"`
	AmazonDir  string `yaml:"amazon_dir"`
	ReportsDir string `yaml:"reports_dir"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Enabled  bool   `yaml:"enabled"`
}

// CacheConfig 数据集缓存配置
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// ScraperConfig 抓取配置
type ScraperConfig struct {
	Delay    time.Duration `yaml:"delay"`
	MaxPages int           `yaml:"max_pages"`
}

// defaultConfig 默认配置
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8808",
			Mode: "debug",
		},
		Data: DataConfig{
			EtsyDir:    "data/etsy",
			AmazonDir:  "data/amazon",
			ReportsDir: "reports",
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			DB:      0,
			Enabled: false,
		},
		Cache: CacheConfig{
			TTL: 5 * time.Minute,
		},
		Scraper: ScraperConfig{
			Delay:    2 * time.Second,
			MaxPages: 2,
		},
	}
}

// InitConfig 加载配置：默认值 → config.yaml → 环境变量，后者覆盖前者
func InitConfig() *Config {
	// .env 不存在是正常情况，不当错误处理
	_ = godotenv.Load()

	cfg := defaultConfig()

	if data, err := os.ReadFile(configFilePath()); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Printf("解析配置文件失败，继续使用默认配置: %v", err)
		}
	}

	applyEnvOverrides(cfg)

	AppConfig = cfg
	return cfg
}

func configFilePath() string {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}

// applyEnvOverrides 环境变量覆盖
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("ETSY_DATA_DIR"); v != "" {
		cfg.Data.EtsyDir = v
	}
	if v := os.Getenv("AMAZON_DATA_DIR"); v != "" {
		cfg.Data.AmazonDir = v
	}
	if v := os.Getenv("REPORTS_DIR"); v != "" {
		cfg.Data.ReportsDir = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
		cfg.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = ttl
		}
	}
}
