package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
}

// LoadConfig reads config.yaml (if present) and the environment, with an
// optional .env file on top. path points at the directory holding the files;
// defaults to the working directory.
func LoadConfig(path ...string) (cfg Config, err error) {
	dir := "."
	if len(path) > 0 {
		dir = path[0]
	}

	if err := godotenv.Load(dir + "/.env"); err != nil {
		log.Println("warning: .env file not found, relying on environment")
	}

	viper.AddConfigPath(dir)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, reading environment only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")

	viper.SetDefault("app.port", "8000")
	viper.SetDefault("app.env", "development")

	err = viper.Unmarshal(&cfg)
	return
}
