package logs

import (
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const module = "curlp"

var (
	logFormat = "%{color}[%{level:.4s}] %{time:15:04:05.000000} %{id:06x} [%{shortpkg}] %{longfunc} -> %{color:reset}%{message}"
	Log       = logging.MustGetLogger(module)
)

func Setup() {
	logging.SetFormatter(logging.MustStringFormatter(logFormat))
	logging.SetBackend(logging.NewLogBackend(os.Stdout, "", 0))
}

func SetConfig(config *viper.Viper) {
	level, err := logging.LogLevel(config.GetString("log.level"))
	if err != nil {
		Log.Warningf("Could not set log level to %v: %v", config.GetString("log.level"), err)
		Log.Warning("Using default log level")
		return
	}

	consoleBackEnd := logging.AddModuleLevel(logging.NewLogBackend(os.Stdout, "", 0))
	consoleBackEnd.SetLevel(level, module)

	if !config.GetBool("log.useRollingLogFile") {
		logging.SetBackend(consoleBackEnd)
		return
	}

	rollingBackEnd := logging.AddModuleLevel(logging.NewLogBackend(&lumberjack.Logger{
		Filename:   config.GetString("log.logFile"),
		MaxSize:    config.GetInt("log.maxLogFileSize"), // megabytes
		MaxBackups: config.GetInt("log.maxLogFilesToKeep"),
		Compress:   true,
	}, "", 0))
	rollingBackEnd.SetLevel(level, module)

	// Only critical messages go to the error log
	criticalBackEnd := logging.AddModuleLevel(logging.NewLogBackend(&lumberjack.Logger{
		Filename:   config.GetString("log.criticalErrorsLogFile"),
		MaxSize:    1,
		MaxBackups: 1,
	}, "", 0))
	criticalBackEnd.SetLevel(logging.CRITICAL, module)

	logging.SetBackend(consoleBackEnd, rollingBackEnd, criticalBackEnd)
}
