package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"github.com/spf13/viper"
	"gitlab.com/semkodev/curlp/api"
	curlpconfig "gitlab.com/semkodev/curlp/config"
	"gitlab.com/semkodev/curlp/logs"
	"gitlab.com/semkodev/curlp/utils"
)

var config *viper.Viper

func init() {
	logs.Setup()
	var err error
	config, err = curlpconfig.Load(os.Args[1:])
	if err != nil {
		logs.Log.Fatalf("Invalid configuration: %v", err)
	}
	logs.SetConfig(config)

	cfg, _ := json.MarshalIndent(config.AllSettings(), "", "  ")
	logs.Log.Debugf("Following settings loaded: \n %+v", string(cfg))
}

func main() {
	Hello()
	if config.GetBool("debug.profile") {
		path := config.GetString("debug.profilePath")
		if err := utils.CreateDirectory(path); err != nil {
			logs.Log.Fatalf("Could not create profile directory %s: %v", path, err)
		}
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(path), profile.NoShutdownHook).Stop()
	}
	StartCurlp()
}

func StartCurlp() {
	logs.Log.Info("Starting Curl-P hasher. Please wait...")
	api.Start(config)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch

	// Clean exit
	logs.Log.Info("Curl-P hasher is shutting down. Please wait...")
	api.End()
	logs.Log.Info("Bye!")
}

func Hello() {
	if !config.GetBool("log.hello") {
		return
	}

	logs.Log.Info(" .o88b. db    db d8888b. db        d8888b.")
	logs.Log.Info("d8P  Y8 88    88 88  `8D 88        88  `8D")
	logs.Log.Info("8P      88    88 88oobY' 88        88oodD'")
	logs.Log.Info("8b      88    88 88`8b   88   C8888D 88~~~")
	logs.Log.Info("Y8b  d8 88b  d88 88 `88. 88booo.   88")
	logs.Log.Info(" `Y88P' ~Y8888P' 88   YD Y88888P   88")
}
