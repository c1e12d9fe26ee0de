package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type firebase struct {
	APIKey          string `mapstructure:"api_key"`
	CredentialsPath string `mapstructure:"credentials_path"`
	Endpoint        string
	RequestURI      string `mapstructure:"request_uri"`
}

type google struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
	Issuer       string
	RevokeURL    string `mapstructure:"revoke_url"`
}

// Config is the configuration of the application
type Config struct {
	Verbose     bool
	Environment string
	App         string
	Firebase    firebase
	Google      google
}

// Load loads the configuration from the given path yml file
func (config *Config) Load(path string) error {
	env := os.Getenv(AppEnvironmentKey)
	if env == "" {
		env = LocalEnvironment
	}
	config.Environment = env

	vip := viper.New()
	vip.SetConfigName(fmt.Sprintf("config.%s", env))
	vip.SetConfigType("yml")
	vip.AddConfigPath(path)

	// Environment variables take priority, e.g. TEST_ENV_FIREBASE_API_KEY
	prefix := fmt.Sprintf("%s_ENV", strings.ToUpper(env))
	vip.SetEnvPrefix(prefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()
	for _, key := range []string{
		"app",
		"firebase.api_key",
		"firebase.credentials_path",
		"firebase.endpoint",
		"firebase.request_uri",
		"google.client_id",
		"google.client_secret",
		"google.redirect_url",
		"google.issuer",
		"google.revoke_url",
	} {
		if err := vip.BindEnv(key); err != nil {
			return fmt.Errorf("Error binding environment variable %s: %v", key, err)
		}
	}

	if err := vip.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error loading configuration file")
	}

	if err := vip.Unmarshal(config); err != nil {
		return fmt.Errorf("Error unmarshaling configuration: %v", err)
	}

	config.Verbose = os.Getenv(VerboseKey) == "true"
	return nil
}
