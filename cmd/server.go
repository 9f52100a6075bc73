/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	devConfig "github.com/Daskott/dogcare/dev/config"
	"github.com/Daskott/dogcare/server"
	"github.com/Daskott/dogcare/shared"
	"github.com/Daskott/dogcare/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serverConfigFile string

func createServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start a dogcare server",
		Long:  `The dogcare server serves the signup/login pages, the caretaker & customer dashboards and the boarding form`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := serverConfig()
			if err != nil {
				return err
			}

			server.Start(config, isDevEnv)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverConfigFile, "sconfig", "", "Config for server")

	return cmd
}

func createMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the dogcare db schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := serverConfig()
			if err != nil {
				return err
			}

			return server.Migrate(config, isDevEnv)
		},
	}

	cmd.Flags().StringVar(&serverConfigFile, "sconfig", "", "Config for server")

	return cmd
}

// serverConfig reads the config in '--sconfig', or the dev config in dev mode
func serverConfig() (*viper.Viper, error) {
	config := viper.New()

	configFile := serverConfigFile
	if isDevEnv && configFile == "" {
		var err error
		configFile, err = devConfigFilePath()
		if err != nil {
			return nil, err
		}
	}

	if configFile == "" {
		return nil, formattedError("\"sconfig\" not set, pass the path to your server config e.g. --sconfig server.yml")
	}

	config.SetConfigFile(configFile)
	shared.BindSecretEnvs(config)
	config.AutomaticEnv() // read in environment variables that match

	if err := config.ReadInConfig(); err != nil {
		return nil, formattedError("error reading server config file: %v", err)
	}

	return config, nil
}

// devConfigFilePath returns ./dev/config/server.yml, creating it from the default
// dev config if it does not exist
func devConfigFilePath() (string, error) {
	configDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	configDir = filepath.Join(configDir, "dev", "config")
	configFilePath := filepath.Join(configDir, "server.yml")

	if !utils.FileExist(configFilePath) {
		if err = utils.CreateDirIfNotExist(configDir); err != nil {
			return "", err
		}

		err = ioutil.WriteFile(configFilePath, []byte(devConfig.SERVER_YML), 0600)
		if err != nil {
			return "", err
		}
	}

	return configFilePath, nil
}
