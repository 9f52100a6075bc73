package shared

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/spf13/viper"
)

// BindSecretEnvs lets secrets be read from ENV vars instead of the config file.
// FYI: The env var overrides whatever is in the config file
func BindSecretEnvs(config *viper.Viper) {
	config.BindEnv("sqlite.passPhrase", "SQLITE_PASSPHRASE")
	config.BindEnv("dogcare.secretKey", "DOGCARE_SECRETKEY")
	config.BindEnv("google.applicationCredentials", "GOOGLE_APPLICATION_CREDENTIALS")
}

// NewServerConfig decodes & validates the server config held by 'config'
func NewServerConfig(config *viper.Viper) (*ServerConfig, error) {
	serverConfig := ServerConfig{}

	err := config.Unmarshal(&serverConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to decode server config: %v", err)
	}

	err = validator.New().Struct(serverConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid server config: %v", strings.ReplaceAll(err.Error(), "\n", "; "))
	}

	if serverConfig.Dogcare.Cron.TimeZone == "" {
		serverConfig.Dogcare.Cron.TimeZone = "UTC"
	}

	return &serverConfig, nil
}
