// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solo",
	Short: "Solo orders blog content records",
	Long: `Solo orders the articles and tags of a blog.

Articles are ordered from the most recently created or updated, tags from the most referenced.
Records are read from JSON or YAML files. Records with a missing or malformed sort field are
reported and keep their position relative to the records they are compared with.
`,
	SilenceUsage: true,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	addLogLevelFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("loglevel", "")
	viper.SetDefault("format", "")
	viper.SetDefault("input", "")
	if os.Getenv("SOLO_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("SOLO_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.solo")
		viper.AddConfigPath("/etc/solo")
		viper.SetConfigName("solo")
	}

	viper.SetEnvPrefix("solo")
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("read config", err)
		return
	}
	config.setParams(&params)
}
