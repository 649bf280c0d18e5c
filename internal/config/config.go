package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env            string  `yaml:"env" env-default:"dev"`
	TrackerAddress string  `yaml:"tracker_address" env-required:"true"`
	SuperuserName  string  `yaml:"superuser_name" env-default:"Jon"`
	JWTSecret      string  `yaml:"-"`
	Params         Params  `yaml:"params" env-required:"true"`
	DB             DB      `yaml:"db" env-required:"true"`
	Kafka          Kafka   `yaml:"kafka" env-required:"true"`
	Elastic        Elastic `yaml:"elasticsearch" env-required:"true"`
	Gateway        Gateway `yaml:"gateway"`
	SMTP           SMTP    `yaml:"smtp"`
}

type Params struct {
	Label MinMaxLen `yaml:"label"`
	Link  MinMaxLen `yaml:"link"`
}

type MinMaxLen struct {
	Min int `yaml:"min" env-required:"true"`
	Max int `yaml:"max" env-required:"true"`
}

type DB struct {
	// Driver selects the record store: "postgres" or "memory".
	Driver   string `yaml:"driver" env-default:"postgres"`
	Host     string `yaml:"host" env-default:"localhost"`
	Port     string `yaml:"port" env-default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"db_name"`
}

type Kafka struct {
	Brokers     []string `yaml:"brokers" env-required:"true"`
	EventsTopic string   `yaml:"events_topic" env-default:"tracker-events"`
	GroupId     string   `yaml:"group_id" env-default:"notifications"`
}

type Elastic struct {
	Addresses []string `yaml:"addresses" env-required:"true"`
	Index     string   `yaml:"index" env-default:"records"`
}

type Gateway struct {
	Address     string      `yaml:"address" env-required:"true"`
	Redis       Redis       `yaml:"redis"`
	RateLimiter RateLimiter `yaml:"rate_limiter"`
}

type Redis struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RateLimiter struct {
	RPS   int `yaml:"rps" env-default:"20"`
	Burst int `yaml:"burst" env-default:"40"`
}

type SMTP struct {
	Email    string `yaml:"email"`
	Password string `yaml:"-"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
}

func MustLoadConfig() *Config {
	godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		panic("no config path in env")
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		panic(err)
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET in env is empty")
	}

	cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD")

	return &cfg
}
