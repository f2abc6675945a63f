/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "realmctl",
	Short: "Browse and edit realmkeeper campaign worlds",
	Long: `realmctl talks to a realmd server. Settings come from flags, REALMCTL_*
environment variables or $HOME/.realmctl.yaml, in that order:

  server: http://localhost:5000
  apikey: <token from "realmctl register">
  world: 1`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.realmctl.yaml)")
	rootCmd.PersistentFlags().String("server", "http://localhost:5000", "realmd base URL")
	rootCmd.PersistentFlags().String("apikey", "", "API key sent with every request")
	rootCmd.PersistentFlags().Int("world", 0, "world id (default is the first world)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "request timeout")

	for _, name := range []string{"server", "apikey", "world", "timeout"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".realmctl")
	}

	viper.SetEnvPrefix("REALMCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *realmclient.Client {
	opts := []realmclient.Option{realmclient.WithTimeout(viper.GetDuration("timeout"))}
	if apiKey := viper.GetString("apikey"); apiKey != "" {
		opts = append(opts, realmclient.WithAPIKey(apiKey))
	}

	return realmclient.New(viper.GetString("server"), opts...)
}
