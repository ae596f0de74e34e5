// Package config provides functionality for managing configuration
// options for the application using command-line flags, environment
// variables and an optional JSON config file.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"server_address"`

	// APIKey is the shared secret compared against the X-API-Key
	// header. The server refuses to start without it.
	APIKey string `json:"api_key"`

	// TableName is the bookmark table (Postgres) or key prefix owner
	// (document backends).
	TableName string `json:"table_name"`

	// DatabaseDSN selects the Postgres backend when non-empty.
	DatabaseDSN string `json:"database_dsn"`

	// RedisAddr selects the Redis backend when non-empty.
	RedisAddr string `json:"redis_addr"`

	// FilePath selects the append-only file backend when non-empty.
	FilePath string `json:"file_storage_path"`

	// LogLevel is the zap level name.
	LogLevel string `json:"log_level"`

	// EnablePprof indicates whether to enable pprof for profiling.
	EnablePprof bool `json:"enable_pprof"`

	// EnableHTTPS indicates whether to serve TLS via autocert.
	EnableHTTPS bool `json:"enable_https"`

	// Config is the path to an optional JSON config file.
	Config string `json:"-"`
}

// ErrMissingAPIKey is the fatal misconfiguration: without a secret the
// API cannot authenticate anyone.
var ErrMissingAPIKey = errors.New("API_KEY is not configured")

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.APIKey, "k", "", "shared API key secret")
	flag.StringVar(&options.TableName, "t", "saved_urls", "bookmark table name")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.RedisAddr, "r", "", "redis address")
	flag.StringVar(&options.FilePath, "f", "", "path to storage file")
	flag.StringVar(&options.LogLevel, "l", "Info", "log level")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
	flag.StringVar(&options.Config, "c", "", "path to JSON config file")
}

// Parse parses the command-line flags, the optional config file and
// environment variables, in that order of precedence: the file
// overlays flag values, the environment wins over both. A stale file
// can never override an operator-set variable.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		applyConfigFile(options.Config)
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		options.APIKey = apiKey
	}

	if tableName := os.Getenv("TABLE_NAME"); tableName != "" {
		options.TableName = tableName
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		options.RedisAddr = redisAddr
	}

	if storagePath := os.Getenv("FILE_STORAGE_PATH"); storagePath != "" {
		options.FilePath = storagePath
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}
		options.EnableHTTPS = httpsMode
	}

	return options
}

// Validate reports the fatal misconfigurations.
func (o *Options) Validate() error {
	if o.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// applyConfigFile overlays non-zero values from the JSON config file.
func applyConfigFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fileOpts Options
	if err := json.Unmarshal(content, &fileOpts); err != nil {
		return
	}

	if fileOpts.Port != "" {
		options.Port = fileOpts.Port
	}
	if fileOpts.APIKey != "" {
		options.APIKey = fileOpts.APIKey
	}
	if fileOpts.TableName != "" {
		options.TableName = fileOpts.TableName
	}
	if fileOpts.DatabaseDSN != "" {
		options.DatabaseDSN = fileOpts.DatabaseDSN
	}
	if fileOpts.RedisAddr != "" {
		options.RedisAddr = fileOpts.RedisAddr
	}
	if fileOpts.FilePath != "" {
		options.FilePath = fileOpts.FilePath
	}
	if fileOpts.LogLevel != "" {
		options.LogLevel = fileOpts.LogLevel
	}
	if fileOpts.EnablePprof {
		options.EnablePprof = true
	}
	if fileOpts.EnableHTTPS {
		options.EnableHTTPS = true
	}
}
