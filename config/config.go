// Package config reads the benchmark workload from HASHBENCH_* environment
// variables.
//
// The default source is ./test/bible.txt, relative to the working directory.
// The module ships that file (Genesis 1-2 from the King James Version), so
// running from the module root works without setup. Any other text longer
// than HASHBENCH_MAX_LEN bytes can be used by setting HASHBENCH_SOURCE.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/zeebo/errs/v2"
)

// Config controls the benchmark workload. The defaults are the reference
// workload and results are only comparable between runs using the same
// values.
type Config struct {
	Source  string `env:"HASHBENCH_SOURCE" env-default:"./test/bible.txt" env-description:"source text the corpus is sampled from"`
	Records int    `env:"HASHBENCH_RECORDS" env-default:"100000" env-description:"number of corpus records"`
	MaxLen  int    `env:"HASHBENCH_MAX_LEN" env-default:"100" env-description:"records are shorter than this many bytes"`
	Rounds  int    `env:"HASHBENCH_ROUNDS" env-default:"1000" env-description:"passes over the corpus per algorithm"`

	Debug     bool `env:"HASHBENCH_DEBUG" env-default:"false" env-description:"log at debug level"`
	HumanLogs bool `env:"HASHBENCH_HUMAN_LOGS" env-default:"true" env-description:"console formatted logs instead of JSON"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errs.Wrap(err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Source == "":
		return errs.Errorf("source path is empty")
	case c.Records < 0:
		return errs.Errorf("records must not be negative: %d", c.Records)
	case c.MaxLen <= 0:
		return errs.Errorf("max length must be positive: %d", c.MaxLen)
	case c.Rounds < 0:
		return errs.Errorf("rounds must not be negative: %d", c.Rounds)
	}
	return nil
}

// Usage describes the environment variables.
func Usage() (string, error) {
	var cfg Config
	s, err := cleanenv.GetDescription(&cfg, nil)
	return s, errs.Wrap(err)
}
