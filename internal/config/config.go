package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ExchangeConfig struct {
	Env           string `yaml:"env" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	MetricsServer `yaml:"metrics_server"`
	ExchangeDB    `yaml:"exchange_db"`
	Redis         `yaml:"redis"`
	Telegram      `yaml:"telegram"`
	KafkaService  `yaml:"kafka-service"`
	Lifecycle     `yaml:"lifecycle"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type MetricsServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"9090"`
}

type ExchangeDB struct {
	Dsn            string `yaml:"dsn" env:"EXCHANGE_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type Redis struct {
	Addr     string        `yaml:"addr" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env-default:"0"`
	DraftTTL time.Duration `yaml:"draft_ttl" env-default:"30m"`
}

type Telegram struct {
	BotToken       string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
	OperatorChatID int64  `yaml:"operator_chat_id" env:"OPERATOR_CHAT_ID"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"request-events"`
}

// Lifecycle holds the timing policy of the request state machine.
// ExpireBooked decides whether already booked requests still fall under
// the offer-expiry sweep.
type Lifecycle struct {
	OfferTTL      time.Duration `yaml:"offer_ttl" env-default:"10m"`
	WaitTTL       time.Duration `yaml:"wait_ttl" env-default:"10m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"30s"`
	NotifyTimeout time.Duration `yaml:"notify_timeout" env-default:"5s"`
	ExpireBooked  bool          `yaml:"expire_booked" env-default:"true"`
}

func MustLoad() *ExchangeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("EXCHANGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("EXCHANGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ExchangeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
