package shared

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viperFromYaml(t *testing.T, yml string) *viper.Viper {
	config := viper.New()
	config.SetConfigType("yaml")
	require.Nil(t, config.ReadConfig(bytes.NewBufferString(yml)))
	BindSecretEnvs(config)
	return config
}

func TestNewServerConfig(t *testing.T) {
	cases := []struct {
		description string
		yml         string
		expectedErr string
	}{
		{
			description: "Should accept a minimal config",
			yml: `
sqlite:
  passPhrase: passphrase
dogcare:
  secretKey: secret
  listener:
    port: 3000
`,
		},
		{
			description: "Should fail when secretKey is missing",
			yml: `
sqlite:
  passPhrase: passphrase
dogcare:
  listener:
    port: 3000
`,
			expectedErr: "SecretKey",
		},
		{
			description: "Should fail when port is missing",
			yml: `
sqlite:
  passPhrase: passphrase
dogcare:
  secretKey: secret
`,
			expectedErr: "Port",
		},
		{
			description: "Should require a bucket when backups are enabled",
			yml: `
sqlite:
  passPhrase: passphrase
dogcare:
  secretKey: secret
  listener:
    port: 3000
google:
  storage:
    prefix: dogcare
    sqliteBackupSchedule: "*/30 * * * *"
    enableSqliteBackupAndSync: true
`,
			expectedErr: "Bucket",
		},
	}

	for _, tc := range cases {
		serverConfig, err := NewServerConfig(viperFromYaml(t, tc.yml))
		if tc.expectedErr == "" {
			assert.Nil(t, err, tc.description)
			assert.Equal(t, "UTC", serverConfig.Dogcare.Cron.TimeZone, tc.description)
			continue
		}

		assert.NotNil(t, err, tc.description)
		if err != nil {
			assert.Contains(t, err.Error(), tc.expectedErr, tc.description)
		}
	}
}

func TestSecretsFromEnv(t *testing.T) {
	os.Setenv("DOGCARE_SECRETKEY", "from-env")
	defer os.Unsetenv("DOGCARE_SECRETKEY")

	serverConfig, err := NewServerConfig(viperFromYaml(t, `
sqlite:
  passPhrase: passphrase
dogcare:
  listener:
    port: 3000
`))
	assert.Nil(t, err)
	assert.Equal(t, "from-env", serverConfig.Dogcare.SecretKey)
}
