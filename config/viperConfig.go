package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/semkodev/curlp/crypt"
	"gitlab.com/semkodev/curlp/logs"
)

const minCacheSize = 512 * 1024

/*
PRECEDENCE (Higher number overrides the others):
1. default
2. config
3. env
4. flag
5. explicit call to Set
*/
func Load(args []string) (*viper.Viper, error) {
	config := viper.New()
	flags := flag.NewFlagSet("curlp", flag.ContinueOnError)

	// 1. Declare flags, their defaults are the defaults
	flags.Int("curl.rounds", crypt.NUMBER_OF_ROUNDSP81, "Default number of Curl-P rounds per absorb/squeeze step")
	flags.Int("curl.maxRounds", crypt.HASH_LENGTH, "Highest number of rounds a request may ask for")
	flags.Bool("debug.profile", false, "Write a CPU profile until shutdown")
	flags.String("debug.profilePath", "profile", "Directory the CPU profile is written to")

	declareApiConfigs(flags)
	declareLogConfigs(flags)

	var configPath = flags.StringP("config", "c", "curlp.config.json", "Config file path")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if err := config.BindPFlags(flags); err != nil {
		return nil, err
	}

	// 2. Bind environment vars
	replacer := strings.NewReplacer(".", "_")
	config.SetEnvPrefix("CURLP")
	config.SetEnvKeyReplacer(replacer)
	config.AutomaticEnv()

	// 3. Load config
	if len(*configPath) > 0 {
		_, err := os.Stat(*configPath)
		if !flags.Changed("config") && os.IsNotExist(err) {
			// Standard config file not found => skip
			logs.Log.Info("Standard config file not found. Loading default settings.")
		} else {
			logs.Log.Infof("Loading config from: %s", *configPath)
			config.SetConfigFile(*configPath)
			if err := config.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "config could not be loaded from: %s", *configPath)
			}
		}
	}

	// 4. Check config for validity
	if err := check(config); err != nil {
		return nil, err
	}
	return config, nil
}

func check(config *viper.Viper) error {
	maxRounds := config.GetInt("curl.maxRounds")
	if maxRounds < 1 {
		return errors.Errorf("the maximum of %v rounds is too low", maxRounds)
	}
	rounds := config.GetInt("curl.rounds")
	if rounds < 1 || rounds > maxRounds {
		return errors.Errorf("the default of %v rounds is outside of [1, %v]", rounds, maxRounds)
	}
	cacheSize := config.GetInt("api.cache.size")
	if cacheSize < minCacheSize {
		return errors.Errorf("the digest cache size of %v bytes is too small, at least %v required", cacheSize, minCacheSize)
	}
	if config.GetInt("api.maxInputs") < 1 {
		return errors.Errorf("api.maxInputs must be positive")
	}
	return nil
}

func declareApiConfigs(flags *flag.FlagSet) {
	flags.Bool("api.debug", false, "Whether to log api access")

	flags.String("api.auth.username", "", "API Access Username")
	flags.String("api.auth.password", "", "API Access Password")

	flags.StringP("api.http.host", "h", "0.0.0.0", "HTTP API Host")
	flags.IntP("api.http.port", "p", 14265, "HTTP API Port")

	flags.StringSlice("api.limitRemoteAccess", nil, "Limit access to these commands from remote")
	flags.Int("api.maxInputs", 1000, "Maximum number of inputs hashed in one getDigests call")
	flags.Bool("api.metrics", true, "Serve prometheus metrics at /metrics")

	flags.Int("api.cache.size", 32*1024*1024, "Size in bytes of the digest cache")
	flags.Int("api.cache.expire", 3600, "Seconds a cached digest is kept. 0 = until evicted")

	flags.Int("api.pow.maxMinWeightMagnitude", 14, "Maximum Min-Weight-Magnitude (Difficulty for PoW)")
	flags.Duration("api.pow.timeout", 0, "Abort a nonce search after this long. 0 = no limit")
}

func declareLogConfigs(flags *flag.FlagSet) {
	flags.Bool("log.hello", true, "Show welcome banner")
	flags.String("log.level", "INFO", "DEBUG, INFO, NOTICE, WARNING, ERROR or CRITICAL")

	flags.Bool("log.useRollingLogFile", false, "Enable save log messages to rolling log files")
	flags.String("log.logFile", "curlp.log", "Path to file where log files are saved")
	flags.Int32("log.maxLogFileSize", 10, "Maximum size in megabytes for log files. Default is 10MB")
	flags.Int32("log.maxLogFilesToKeep", 1, "Maximum amount of log files to keep when a new file is created. Default is 1 file")

	flags.String("log.criticalErrorsLogFile", "curlpCriticalErrors.log", "Path to file where critical error messages are saved")
}
