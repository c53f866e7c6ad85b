/*
Copyright (c) YugabyteDB, Inc.

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
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yugabyte/yb-objnames/src/constants"
	"github.com/yugabyte/yb-objnames/src/utils"
	"github.com/yugabyte/yb-objnames/src/utils/config"
)

var (
	cfgFile  string
	logDir   string
	logLevel string
	dbType   string

	// cfg holds the config file and YB_OBJNAMES_* environment values of the current invocation.
	cfg = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "yb-objnames",
	Short: "Enumerate and resolve qualified database object names for name-resolution tests",
	Long: `Generates every qualified spelling of a test object name (catalog, schema and object, with
partially qualified and null-qualified variants) for a configured test database environment,
and resolves dotted names against the canonical objects of that environment.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfg.ConfigFileUsed() != "" {
			err := config.ValidateConfigFile(cfg)
			if err != nil {
				utils.ErrExit("%s: %w", cfg.ConfigFileUsed(), err)
				return
			}
		}
		overrides, err := bindCobraFlagsToViper(cmd, cfg)
		if err != nil {
			utils.ErrExit("apply config to flags of %q: %w", cmd.CommandPath(), err)
			return
		}
		InitLogging(logDir, logLevel, cmd.Use == "version", cmd.Name())
		for _, o := range overrides {
			log.Infof("flag --%s set to %q from config key %q", o.FlagName, o.Value, o.ConfigKey)
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.yb-objnames.yaml)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"directory under which logs/yb-objnames-<command>.log is written; logging is disabled if not set")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level for the log file: panic, fatal, error, warn, info, debug or trace")
	rootCmd.PersistentFlags().StringVar(&dbType, "db-type", "",
		fmt.Sprintf("type of the test database environment: one of %s", strings.Join(constants.SupportedDBTypes, ", ")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	cfg = viper.New()
	if cfgFile != "" {
		// Use config file from the flag.
		cfg.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".yb-objnames" (without extension).
		cfg.AddConfigPath(home)
		cfg.SetConfigType("yaml")
		cfg.SetConfigName(".yb-objnames")
	}

	// YB_OBJNAMES_ENUMERATE_MAX_DEPTH -> enumerate.max-depth
	cfg.SetEnvPrefix("YB_OBJNAMES")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	cfg.AutomaticEnv()

	// If a config file is found, read it in.
	err := cfg.ReadInConfig()
	if err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", cfg.ConfigFileUsed())
	} else if cfgFile != "" {
		utils.ErrExit("read config file %q: %w", cfgFile, err)
	}
}
