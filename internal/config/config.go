package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PortalConfig struct {
	Env string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	PortalDB     `yaml:"portal_db"`
	LogConfig    `yaml:"log_config"`
	AuthConfig   `yaml:"auth"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type PortalDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	CustomerTokenTTL   time.Duration `yaml:"customer_token_ttl" env-default:"1h"`
	EmployeeTokenTTL   time.Duration `yaml:"employee_token_ttl" env-default:"2h"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"settlement-events"`
}

func MustLoad() *PortalConfig {

	// Processing env config variable and file
	configPath := os.Getenv("PORTAL_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PORTAL_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg PortalConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
