package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"bugtally.dev/pkg/bugtally/internal/controller"
	"bugtally.dev/pkg/bugtally/internal/domain"
	m "bugtally.dev/pkg/bugtally/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "bugtally"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	initialFlagName    = "initial"
	iterationsFlagName = "iterations"
	fixedFlagName      = "fixed"
	introducedFlagName = "introduced"
	formatFlagName     = "format"
	maxStepsFlagName   = "max-steps"
	logFileFlagName    = "log-file"
	verboseFlagName    = "verbose"

	initialConfigKey    = "recurrence.initial"
	iterationsConfigKey = "recurrence.iterations"
	fixedConfigKey      = "recurrence.fixed"
	introducedConfigKey = "recurrence.introduced"
	formatConfigKey     = "output.format"
	maxStepsConfigKey   = "trace.max_steps"

	defaultFormat   = string(controller.FormatText)
	defaultMaxSteps = domain.DefaultMaxTraceSteps

	envPrefix = "BUGTALLY"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ""
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	defaults := m.DefaultParams()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(initialConfigKey, defaults.InitialBugs)
	viper.SetDefault(iterationsConfigKey, defaults.Iterations)
	viper.SetDefault(fixedConfigKey, defaults.FixedPerStep)
	viper.SetDefault(introducedConfigKey, defaults.IntroducedPerStep)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(maxStepsConfigKey, defaultMaxSteps)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing or unreadable config file leaves the defaults in place.
	_ = viper.ReadInConfig()
}

// integerSetting reads key as an int64 without coercing fractions,
// booleans or malformed strings. Strings are always decimal, so env values
// like "010" or "0x10" are never read in another base.
func integerSetting(key string) (int64, error) {
	value := viper.Get(key)

	switch v := value.(type) {
	case bool:
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", domain.ErrInvalidArgument, key, v)
	case float32:
		if !isIntegral(float64(v)) {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", domain.ErrInvalidArgument, key, v)
		}
	case float64:
		if !isIntegral(v) {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", domain.ErrInvalidArgument, key, v)
		}
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a decimal integer, got %q", domain.ErrInvalidArgument, key, v)
		}

		return n, nil
	}

	n, err := cast.ToInt64E(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", domain.ErrInvalidArgument, key, value)
	}

	return n, nil
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// paramsFromConfig resolves the recurrence parameters from flags, env,
// config file and defaults, in viper's precedence order.
func paramsFromConfig() (m.Params, error) {
	var (
		params m.Params
		errs   []error
	)

	fields := []struct {
		key    string
		target *int64
	}{
		{initialConfigKey, &params.InitialBugs},
		{iterationsConfigKey, &params.Iterations},
		{fixedConfigKey, &params.FixedPerStep},
		{introducedConfigKey, &params.IntroducedPerStep},
	}

	for _, field := range fields {
		n, err := integerSetting(field.key)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		*field.target = n
	}

	if err := errors.Join(errs...); err != nil {
		return m.Params{}, err
	}

	return params, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the global slog logger.
//
// Logs go to a rotated file when logPath is set, to stderr when only
// verbose is set, and nowhere otherwise.
func configureLogger(logPath string, verbose bool) {
	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	var logWriter io.Writer

	switch {
	case strings.TrimSpace(logPath) != "":
		logWriter = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
	case verbose:
		logWriter = os.Stderr
	default:
		logWriter = io.Discard
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
