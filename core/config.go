package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string
		Debug    bool
		TestMode bool
		AppName  string
		Build    string

		RollbarToken string

		Server ServerConfig
		API    APIConfig
		Local  LocalConfig
		DB     DBConfig
	}

	ServerConfig struct {
		Host string
		Port string
	}

	// APIConfig configures the client side: where the remote collection API
	// lives and how the session talks to it.
	APIConfig struct {
		BaseURL      string
		ProbeTimeout time.Duration
		PollInterval time.Duration
	}

	// LocalConfig configures the local fallback store.
	LocalConfig struct {
		DataDir string
	}

	DBConfig struct {
		Engine string // "inmem" | "sqlite"
		Path   string // sqlite file path
	}
)

func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// NewConfig loads the app configuration: defaults, then an optional
// config/.env.<env> file, then environment variables prefixed with the
// current ENV (DEV by default).
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Darasa")
	conf.SetDefault("build", "dev")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("serverHost", "127.0.0.1")
	conf.SetDefault("serverPort", "8000")
	conf.SetDefault("apiBaseUrl", "http://127.0.0.1:8000")
	conf.SetDefault("apiProbeTimeout", 3*time.Second)
	conf.SetDefault("apiPollInterval", 3*time.Second)
	conf.SetDefault("localDataDir", filepath.Join(".", "data"))
	conf.SetDefault("dbEngine", "inmem")
	conf.SetDefault("dbPath", filepath.Join(".", "data", "darasa.db"))

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host: conf.GetString("serverHost"),
			Port: conf.GetString("serverPort"),
		},
		API: APIConfig{
			BaseURL:      strings.TrimRight(conf.GetString("apiBaseUrl"), "/"),
			ProbeTimeout: conf.GetDuration("apiProbeTimeout"),
			PollInterval: conf.GetDuration("apiPollInterval"),
		},
		Local: LocalConfig{
			DataDir: conf.GetString("localDataDir"),
		},
		DB: DBConfig{
			Engine: conf.GetString("dbEngine"),
			Path:   conf.GetString("dbPath"),
		},
	}
}
