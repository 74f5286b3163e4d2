package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"cleanarch.dev/pkg/cleanarch/internal/adapter"
	"cleanarch.dev/pkg/cleanarch/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cleanarch"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	configFlagName          = "config"
	outputFlagName          = "output"
	noCacheFlagName         = "no-cache"
	excludeFlagName         = "exclude"
	verboseFlagName         = "verbose"
	logFileFlagName         = "log-file"
	parallelFlagName        = "parallel"
	formatFlagName          = "format"
	failOnViolationFlagName = "fail-on-violation"
	testsFlagName           = "tests"
	moduleFlagName          = "module"

	excludeConfigKey         = "paths.exclude"
	testsConfigKey           = "paths.tests"
	parallelConfigKey        = "check.parallel"
	formatConfigKey          = "check.format"
	failOnViolationConfigKey = "check.fail_on_violation"
	architectureConfigKey    = "architecture"

	defaultReportsDir      = ".cleanarch"
	defaultNoCache         = false
	defaultParallel        = 0
	defaultFormat          = adapter.FormatYAML
	defaultFailOnViolation = true
	defaultTests           = false

	envPrefix = "CLEANARCH"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".cleanarch.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(noCacheFlagName, defaultNoCache)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(testsConfigKey, defaultTests)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(failOnViolationConfigKey, defaultFailOnViolation)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// The default file is optional; an explicit --config is read again and
	// checked by readConfigFile.
	_ = viper.ReadInConfig()
}

// readConfigFile loads the file named by --config.
func readConfigFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// loadArchitecture decodes the architecture section of the configuration.
func loadArchitecture() (domain.ArchitectureConfig, error) {
	var cfg domain.ArchitectureConfig

	if err := viper.UnmarshalKey(architectureConfigKey, &cfg); err != nil {
		return domain.ArchitectureConfig{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	if version := viper.GetInt(configVersionKey); version > currentConfigVersion {
		return domain.ArchitectureConfig{}, fmt.Errorf("%w: unsupported config version %d", domain.ErrInvalidConfig, version)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ArchitectureConfig{}, err
	}

	if len(cfg.Modules) == 0 {
		slog.Warn("no modules configured, every unit falls into the undefined module")
	}

	return cfg, nil
}

var errEmptyLogPath = errors.New("empty log path")

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

	// Numeric slog levels are accepted as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the global slog logger, writing to a rotating
// file. It logs at the configured level, or at Debug when verbose is set.
func configureLogger(logPath string, verbose bool) error {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		return errEmptyLogPath
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	return nil
}
