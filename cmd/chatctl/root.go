package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	sqlitePathKey     = "sqlite_path"
	badgerFilepathKey = "badger_filepath"
)

// rootCmd is the operator console of the portal chat.
var rootCmd = &cobra.Command{
	Use:           "chatctl",
	Short:         "Manage portals, owners and contacts of the portal chat",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chatctl.yaml)")
	rootCmd.PersistentFlags().String("sqlite-path", "portal-chat.db", "Path of the portal directory database")
	rootCmd.PersistentFlags().String("badger-filepath", "data/audit", "Path of the audit log")
	_ = viper.BindPFlag(sqlitePathKey, rootCmd.PersistentFlags().Lookup("sqlite-path"))
	_ = viper.BindPFlag(badgerFilepathKey, rootCmd.PersistentFlags().Lookup("badger-filepath"))

	rootCmd.AddCommand(portalCmd, pageCmd, ownerCmd, contactCmd, auditCmd)
}

// initConfig reads the optional config file then CHATCTL_* variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".chatctl")
	}

	viper.SetEnvPrefix("CHATCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}
