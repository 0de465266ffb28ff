package server

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	IdleTimeout time.Duration

	// StorageBackend selects "dynamodb" or "memory".
	StorageBackend string
	AwsRegion      string

	RedisAddr     string
	RedisPassword string
	RedisChannel  string
}

func NewConfig() Config {
	var config Config

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs/server")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("Server.Port", "8080")
	viper.SetDefault("Server.IdleTimeout", "60s")
	viper.SetDefault("Storage.Backend", "dynamodb")
	viper.SetDefault("Redis.Channel", "pongking:changes")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal error config file: %s", err))
		}
	}

	config.Port = viper.GetString("Server.Port")
	idleTimeout, err := time.ParseDuration(viper.GetString("Server.IdleTimeout"))
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}
	config.IdleTimeout = idleTimeout
	config.StorageBackend = viper.GetString("Storage.Backend")
	config.AwsRegion = viper.GetString("AWS_REGION")
	config.RedisAddr = viper.GetString("Redis.Addr")
	config.RedisPassword = viper.GetString("Redis.Password")
	config.RedisChannel = viper.GetString("Redis.Channel")

	return config
}
