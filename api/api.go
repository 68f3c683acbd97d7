package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gitlab.com/semkodev/curlp/logs"
	"gitlab.com/semkodev/curlp/metrics"
)

type Request struct {
	Command            string
	Trytes             []string
	Rounds             int
	Length             int
	MinWeightMagnitude int
}

type apiCall func(request Request, c *gin.Context, t time.Time)

var (
	apiCalls     = make(map[string]apiCall)
	startModules []func(apiConfig *viper.Viper)
	srv          *http.Server
	config       *viper.Viper
	limitAccess  []string
)

func addAPICall(command string, implementation apiCall) {
	if _, ok := apiCalls[command]; ok {
		panic(fmt.Sprintf("api call [%s] is already registered", command))
	}
	apiCalls[command] = implementation
}

func addStartModule(start func(apiConfig *viper.Viper)) {
	startModules = append(startModules, start)
}

// CreateRouter configures the api from apiConfig and returns its handler.
func CreateRouter(apiConfig *viper.Viper) *gin.Engine {
	config = apiConfig
	if !config.GetBool("api.debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	limitAccess = config.GetStringSlice("api.limitRemoteAccess")
	logs.Log.Debug("Limited remote access to:", limitAccess)

	for _, start := range startModules {
		start(config)
	}

	router := gin.Default()

	username := config.GetString("api.auth.username")
	password := config.GetString("api.auth.password")
	if len(username) > 0 && len(password) > 0 {
		router.Use(gin.BasicAuth(gin.Accounts{username: password}))
	}

	router.POST("/", func(c *gin.Context) {
		t := time.Now()
		var request Request
		if err := c.ShouldBindJSON(&request); err != nil {
			logs.Log.Error("ERROR request", err)
			ReplyError("Wrongly formed JSON", c)
			return
		}
		if triesToAccessLimited(request.Command, c) {
			logs.Log.Warningf("Denying limited command request %v from remote %v",
				request.Command, c.Request.RemoteAddr)
			ReplyError("Limited remote command access", c)
			return
		}
		implementation, ok := apiCalls[request.Command]
		if !ok {
			logs.Log.Error("Unknown command", request.Command)
			ReplyError("No known command provided", c)
			return
		}
		metrics.APICallCounter.WithLabelValues(request.Command).Inc()
		implementation(request, c, t)
	})

	if config.GetBool("api.metrics") {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	return router
}

func Start(apiConfig *viper.Viper) {
	router := CreateRouter(apiConfig)
	srv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.GetString("api.http.host"), config.GetInt("api.http.port")),
		Handler: router,
	}
	go func() {
		logs.Log.Infof("API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Log.Fatal("API Server Error", err)
		}
	}()
}

func End() {
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		interruptSearch()
		if err := srv.Shutdown(ctx); err != nil {
			logs.Log.Error("API Server Shutdown Error:", err)
		}
		logs.Log.Info("API Server exiting...")
	}
}

func ReplyError(message string, c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": message,
	})
}

func getDuration(t time.Time) float64 {
	return time.Now().Sub(t).Seconds()
}

func triesToAccessLimited(command string, c *gin.Context) bool {
	if strings.HasPrefix(c.Request.RemoteAddr, "127.0.0.1") {
		return false
	}
	for _, l := range limitAccess {
		if l == command {
			return true
		}
	}
	return false
}
