package configuration

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"youtube-tools/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App        App        `json:"app"`
	OEmbed     OEmbed     `json:"oembed"`
	Transcript Transcript `json:"transcript"`
	Logger     Logger     `json:"logger"`
}

type App struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// OEmbed configures the metadata provider client.
type OEmbed struct {
	URL       string `json:"url"`
	UserAgent string `json:"userAgent"`
	// TimeoutSeconds bounds a single outbound call; 0 keeps the transport default.
	TimeoutSeconds int `json:"timeoutSeconds"`
}

// Transcript configures the caption provider client.
type Transcript struct {
	PlayerURL      string `json:"playerUrl"`
	UserAgent      string `json:"userAgent"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

type Logger struct {
	Format string `json:"format"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initProviders(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8000
	}
	if v := os.Getenv("HOST"); v != "" {
		C.App.Host = v
	}
}

func initProviders(C *Config) {
	if C.OEmbed.URL == "" {
		C.OEmbed.URL = "https://www.youtube.com/oembed"
	}
	if C.OEmbed.UserAgent == "" {
		C.OEmbed.UserAgent = DefaultUserAgent
	}
	if C.Transcript.PlayerURL == "" {
		C.Transcript.PlayerURL = "https://www.youtube.com/youtubei/v1/player"
	}
	if C.Transcript.UserAgent == "" {
		C.Transcript.UserAgent = DefaultUserAgent
	}
}

// DefaultUserAgent is the browser-like identification sent on outbound calls.
// YouTube rejects Go's default client identification.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// OEmbedTimeout returns the configured oEmbed client timeout.
func OEmbedTimeout() time.Duration {
	return time.Duration(C.OEmbed.TimeoutSeconds) * time.Second
}

// TranscriptTimeout returns the configured transcript client timeout.
func TranscriptTimeout() time.Duration {
	return time.Duration(C.Transcript.TimeoutSeconds) * time.Second
}
