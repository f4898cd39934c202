// Package config loads generator settings with viper: built-in defaults,
// then an optional config file, then SBMGEN_* environment variables (a .env
// file in the working directory is read first). It also builds the zerolog
// logger used by the CLI.
package config
