package config

import "fmt"

const (
	defaultLogFile           = "bookstore.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultRequestLogFile    = "log.txt"
	defaultPort              = 3000
	defaultHost              = "0.0.0.0"
	defaultData              = "data"
	defaultStorageDriver     = StorageDriverFile
	defaultMaxBodySize       = 1 << 20
	defaultRateLimitRPS      = 0
	defaultRateLimitBurst    = 20
	defaultShutdownTimeout   = 10

	// Version is the version of the application.
	Version = "1.0.0"
)

// Storage drivers understood by the record store.
const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// Options is decoded by viper, hence the mapstructure tags.
type Options struct {
	// LogFile is the file to write application logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size in megabytes of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the rotated log files
	LogCompress bool `mapstructure:"log_compress"`
	// RequestLogFile receives one plain text line per request
	RequestLogFile string `mapstructure:"request_log_file"`
	// Port is the port to listen on
	Port int `mapstructure:"port"`
	// Host is the host to listen on
	Host string `mapstructure:"host"`
	// Data is the directory holding the collections
	Data string `mapstructure:"data"`
	// StorageDriver is either "file" or "sqlite"
	StorageDriver string `mapstructure:"storage_driver"`
	// DSN is the sqlite database path, only used by the sqlite driver
	DSN string `mapstructure:"dsn"`
	// MaxBodySize is the maximum size of a request body, in bytes
	MaxBodySize int64 `mapstructure:"max_body_size"`
	// RateLimitRPS is the per client request rate, 0 disables limiting
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	// ShutdownTimeout is how long in seconds in-flight requests may take on shutdown
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		RequestLogFile:    defaultRequestLogFile,
		Port:              defaultPort,
		Host:              defaultHost,
		Data:              defaultData,
		StorageDriver:     defaultStorageDriver,
		MaxBodySize:       defaultMaxBodySize,
		RateLimitRPS:      defaultRateLimitRPS,
		RateLimitBurst:    defaultRateLimitBurst,
		ShutdownTimeout:   defaultShutdownTimeout,
	}
	return Opts
}

// Addr returns the listen address.
func (o *Options) Addr() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}
