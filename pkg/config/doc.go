// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env/v11 struct tags, with optional
// .env files read through github.com/joho/godotenv.
//
// Each package owns its config struct (validator.Config, logger.Config) and
// callers load them with a prefix:
//
//	var vcfg validator.Config
//	config.MustLoad(&vcfg, config.WithPrefix(validator.EnvPrefix))
//
//	var lcfg logger.Config
//	config.MustLoad(&lcfg)
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be matched with
// errors.Is.
package config
