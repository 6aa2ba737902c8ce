package config

import (
	"errors"
	"fmt"
	"strings"
	"os-scheduler-sim/internal/schedulers"
	"time"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port      int             `mapstructure:"port"`
	Scheduler SchedulerParams `mapstructure:"scheduler"`
	RateLimit RateLimit       `mapstructure:"rate_limit"`
	Redis     Redis           `mapstructure:"redis"`
}

// SchedulerParams are applied to API requests that leave them out.
type SchedulerParams struct {
	RoundRobin struct {
		TimeQuantum int `mapstructure:"time_quantum"`
	} `mapstructure:"round_robin"`
	RunFor    int `mapstructure:"run_for"`
	MaxRunFor int `mapstructure:"max_run_for"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Redis holds the result store connection. An empty Addr keeps runs in memory.
type Redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.run_for", 20)
	v.SetDefault("scheduler.max_run_for", schedulers.MaxRunFor)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Hour)
}

// Load reads config.yaml from dir if it exists and applies SCHEDULER_
// environment overrides on top of the defaults.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	switch {
	case c.Port <= 0:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.Scheduler.RoundRobin.TimeQuantum < 0:
		return fmt.Errorf("invalid round robin time quantum %d", c.Scheduler.RoundRobin.TimeQuantum)
	case c.Scheduler.MaxRunFor <= 0 || c.Scheduler.MaxRunFor > schedulers.MaxRunFor:
		return fmt.Errorf("invalid max_run_for %d: must be in 1..%d", c.Scheduler.MaxRunFor, schedulers.MaxRunFor)
	case c.Scheduler.RunFor < 0 || c.Scheduler.RunFor > c.Scheduler.MaxRunFor:
		return fmt.Errorf("invalid run_for %d", c.Scheduler.RunFor)
	case c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0:
		return fmt.Errorf("invalid rate limit %v/s burst %d", c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	return nil
}
