package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	AdminKey   string `yaml:"admin_key" env:"ADMIN_KEY" env-default:"rjadmin123"`
	HTTPServer `yaml:"http_server"`
	Mongo      Mongo `yaml:"mongo"`
	Venue      Venue `yaml:"venue"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Mongo struct {
	URI      string        `yaml:"uri" env:"MONGO_URI"`
	Database string        `yaml:"database" env:"MONGO_DATABASE"`
	Timeout  time.Duration `yaml:"timeout" env-default:"10s"`
}

type Venue struct {
	Name    string `yaml:"name" env-default:"RJ Pickleball Club"`
	Address string `yaml:"address" env-default:"123 Court Street, Your City, 12345"`
	Phone   string `yaml:"phone" env-default:"+1 123 456 7890"`
	Email   string `yaml:"email" env-default:"info@rjpickleball.com"`
}

// MissingFields reports which store settings are absent. The app starts
// anyway and fails on the first store operation.
func (m Mongo) MissingFields() []string {
	var missing []string
	if m.URI == "" {
		missing = append(missing, "uri")
	}
	if m.Database == "" {
		missing = append(missing, "database")
	}
	return missing
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from env: %s", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
