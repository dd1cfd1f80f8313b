package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "INVENTORY_CONFIG_FILE"

type redisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type cacheConfig struct {
	SlidingTTL  time.Duration `mapstructure:"sliding_ttl"`
	AbsoluteTTL time.Duration `mapstructure:"absolute_ttl"`
}

type Config struct {
	LogLevel        slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr  string        `mapstructure:"http_server_addr"`
	SpannerDatabase string        `mapstructure:"spanner_database"`
	Redis           redisConfig   `mapstructure:"redis"`
	Cache           cacheConfig   `mapstructure:"cache"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func Load() Config {
	v := viper.New()
	setDefaults(v)

	if path := getConfigFilepath(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			die(err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		die(err)
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "INFO")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("spanner_database",
		"projects/test-project/instances/emulator-instance/databases/inventory-db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.sliding_ttl", 15*time.Minute)
	v.SetDefault("cache.absolute_ttl", time.Hour)
	v.SetDefault("shutdown_timeout", 5*time.Second)
}

// decode unmarshals the viper state into Config. The text-unmarshaller hook
// lets slog.Level parse names like "INFO" or "DEBUG"; the duration hook keeps
// "15m"-style TTL strings working.
func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	return cfg, err
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}
