// Package config loads the CLI host's configuration from environment
// variables (optionally via a .env file) using viper and godotenv, with an
// explicit setDefaults pass and typed sub-configs.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"examsched/internal/domain"
)

// Config is the CLI host's full configuration. Only scheduling parameters,
// the optional repair pass and logging are carried here — this repo has no
// database, cache, or auth surface to configure.
type Config struct {
	Log        LogConfig
	Scheduling domain.SchedulingParams
	Repair     RepairConfig
}

// LogConfig configures pkg/logger.
type LogConfig struct {
	Level  string
	Format string
}

// RepairConfig configures the optional local-repair post-phase.
type RepairConfig struct {
	Enabled  bool
	MaxMoves int
}

// Load reads configuration from the environment (and .env, if present),
// applying defaults for every field.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Scheduling: domain.SchedulingParams{
			MaxDays:                v.GetInt("MAX_DAYS"),
			StudentMaxPerDay:       v.GetInt("STUDENT_MAX_PER_DAY"),
			InstructorMaxPerDay:    v.GetInt("INSTRUCTOR_MAX_PER_DAY"),
			WLargeLate:             v.GetInt("W_LARGE_LATE"),
			WB2BStudent:            v.GetInt("W_B2B_STUDENT"),
			WB2BInstructor:         v.GetInt("W_B2B_INSTRUCTOR"),
			PrioritizeLargeCourses: v.GetBool("PRIORITIZE_LARGE_COURSES"),
		},
		Repair: RepairConfig{
			Enabled:  v.GetBool("REPAIR_ENABLED"),
			MaxMoves: v.GetInt("REPAIR_MAX_MOVES"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("MAX_DAYS", 5)
	v.SetDefault("STUDENT_MAX_PER_DAY", 2)
	v.SetDefault("INSTRUCTOR_MAX_PER_DAY", 3)
	v.SetDefault("W_LARGE_LATE", 10)
	v.SetDefault("W_B2B_STUDENT", 5)
	v.SetDefault("W_B2B_INSTRUCTOR", 3)
	v.SetDefault("PRIORITIZE_LARGE_COURSES", false)

	v.SetDefault("REPAIR_ENABLED", false)
	v.SetDefault("REPAIR_MAX_MOVES", 50)
}
