package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvState remembers the outcome of the one-time .env read so every Load
// call reports the same failure.
type dotenvState struct {
	once sync.Once
	err  error
}

func (d *dotenvState) load() error {
	d.once.Do(func() { d.err = LoadEnv() })
	return d.err
}

var dotenv = &dotenvState{}

// LoadEnv reads dotenv files into the process environment. Variables that
// are already set win over file values. Missing files are skipped; with no
// paths, ".env" in the working directory is tried.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
	}
	return nil
}

// Load parses environment variables into v using `env` struct tags.
// The default .env file is read once per process before the first parse; a
// malformed file fails this and every later call.
//
//	type ContactConfig struct {
//		OperatorEmail string `env:"CONTACT_OPERATOR_EMAIL,required"`
//		MaxBodyBytes  int64  `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536"`
//	}
//
//	var cfg ContactConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := dotenv.load(); err != nil {
		return err
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
