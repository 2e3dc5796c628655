package database

import (
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/config"
)

// CreateConfigFromViperConfig adapts the application configuration to database configuration.
// Connection target values already taken from the environment by DefaultConfig win over the file,
// tuning values from the file win over the defaults.
func CreateConfigFromViperConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	file := conf.Database

	fillEmpty(&dbConf.URL, file.URL)
	fillEmpty(&dbConf.Host, file.Host)
	fillEmpty(&dbConf.Username, file.Username)
	fillEmpty(&dbConf.Password, file.Password)
	fillEmpty(&dbConf.Database, file.Database)
	if configEnv("CC_DB_PORT") == "" {
		override(&dbConf.Port, ParsePort(file.Port))
	}

	override(&dbConf.Driver, file.Driver)
	override(&dbConf.SSLMode, file.SSLMode)
	override(&dbConf.LogLevel, file.LogLevel)
	override(&dbConf.MaxOpenConns, file.MaxOpenConns)
	override(&dbConf.MaxIdleConns, file.MaxIdleConns)
	override(&dbConf.RetryAttempts, file.RetryAttempts)
	override(&dbConf.ConnMaxLifetime, file.ConnMaxLifetime)
	override(&dbConf.ConnMaxIdleTime, file.ConnMaxIdleTime)
	override(&dbConf.QueryTimeout, file.QueryTimeout)
	override(&dbConf.SlowThreshold, file.SlowThreshold)
	override(&dbConf.RetryDelay, file.RetryDelay)

	return dbConf
}

type settable interface {
	~string | ~int | ~int64
}

// fillEmpty sets dst only when nothing was set before
func fillEmpty[T settable](dst *T, value T) {
	var zero T
	if *dst == zero {
		*dst = value
	}
}

// override replaces dst with any positive or non-empty value
func override[T settable](dst *T, value T) {
	var zero T
	if value > zero {
		*dst = value
	}
}

// ParsePort converts a port string to an int, returning 0 when it is not a valid port
func ParsePort(port string) int {
	p, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
