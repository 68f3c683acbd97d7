package logs

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetConfigLevel(t *testing.T) {
	Setup()
	config := viper.New()
	config.Set("log.level", "WARNING")
	SetConfig(config)

	assert.False(t, Log.IsEnabledFor(logging.INFO))
	assert.True(t, Log.IsEnabledFor(logging.ERROR))
}

func TestSetConfigInvalidLevel(t *testing.T) {
	Setup()
	config := viper.New()
	config.Set("log.level", "LOUD")
	SetConfig(config)

	assert.True(t, Log.IsEnabledFor(logging.INFO))
}
