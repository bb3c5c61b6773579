// Package config loads process configuration from environment variables.
//
// Configuration structs declare their variables with struct tags understood
// by github.com/caarlos0/env. Load parses them after reading an optional
// .env file through github.com/joho/godotenv, so local development can keep
// secrets out of the shell while production sets real variables (which
// always take precedence).
//
//	type Config struct {
//		Port int    `env:"HTTP_PORT" envDefault:"8080"`
//		Key  string `env:"POSTMARK_SERVER_TOKEN,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Configuration is read once at startup and treated as read-only afterwards.
// Parse failures are returned joined with ErrParsingConfig.
package config
