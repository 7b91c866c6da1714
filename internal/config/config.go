package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	// 大厅接纳的玩家人数，满员即开局
	LobbySize int `mapstructure:"lobby_size"`
	// 一次性加入码池，留空则按大厅人数自动生成
	PlayerCodes []string `mapstructure:"player_codes"`
}

var cfg *AppConfig

func GetConfig() *AppConfig {
	if cfg == nil {
		cfg = InitConfig()
	}

	return cfg
}

func InitConfig() *AppConfig {
	v := viper.New()

	v.SetConfigFile("app_config")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	v.SetDefault("lobby_size", 2)

	if err := v.ReadInConfig(); err != nil {
		panic(fmt.Errorf("加载配置失败: %w", err))
	}

	var config AppConfig

	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("解析配置失败: %w", err))
	}

	// 身份池共 6 份，大厅人数不能超过它
	if config.LobbySize <= 0 || config.LobbySize > 6 {
		panic(fmt.Errorf("无效的大厅人数: %d", config.LobbySize))
	}

	return &config
}
