package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "BOOKSTORE"

var Opts *Options

// Load builds the options from defaults, a .env file, the environment and,
// when file is not empty, a config file. Later sources win.
func Load(file string) (*Options, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := newViper()
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return nil, errors.Wrapf(err, "unable to access config file %s", file)
		}
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", file)
		}
	}

	opts := GetDefaultOptions()
	if err := v.Unmarshal(opts); err != nil {
		return nil, errors.Wrap(err, "unable to decode options")
	}
	if err := prepare(opts); err != nil {
		return nil, err
	}
	Opts = opts
	return opts, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := GetDefaultOptions()
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file_max_size", defaults.LogFileMaxSize)
	v.SetDefault("log_file_max_backups", defaults.LogFileMaxBackups)
	v.SetDefault("log_file_max_age", defaults.LogFileMaxAge)
	v.SetDefault("log_compress", defaults.LogCompress)
	v.SetDefault("request_log_file", defaults.RequestLogFile)
	v.SetDefault("port", defaults.Port)
	v.SetDefault("host", defaults.Host)
	v.SetDefault("data", defaults.Data)
	v.SetDefault("storage_driver", defaults.StorageDriver)
	v.SetDefault("dsn", defaults.DSN)
	v.SetDefault("max_body_size", defaults.MaxBodySize)
	v.SetDefault("rate_limit_rps", defaults.RateLimitRPS)
	v.SetDefault("rate_limit_burst", defaults.RateLimitBurst)
	v.SetDefault("shutdown_timeout", defaults.ShutdownTimeout)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is the conventional port variable and takes precedence.
	_ = v.BindEnv("port", "PORT", envPrefix+"_PORT")
	return v
}

func prepare(opts *Options) error {
	switch opts.StorageDriver {
	case StorageDriverFile, StorageDriverSQLite:
	default:
		return errors.Errorf("unknown storage driver %q", opts.StorageDriver)
	}
	if opts.Port <= 0 || opts.Port > 65535 {
		return errors.Errorf("invalid port %d", opts.Port)
	}

	dataDir, err := checkDataDir(opts.Data)
	if err != nil {
		return err
	}
	opts.Data = dataDir
	if opts.DSN == "" {
		opts.DSN = filepath.Join(opts.Data, "bookstore.db")
	}
	return nil
}

func checkDataDir(dataDir string) (string, error) {
	// Relative paths are taken from the working directory.
	if !filepath.IsAbs(dataDir) {
		absDir, err := filepath.Abs(dataDir)
		if err != nil {
			return "", errors.Wrapf(err, "unable to resolve data folder %s", dataDir)
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", errors.Wrapf(err, "unable to create data folder %s", dataDir)
		}
	}
	return dataDir, nil
}
