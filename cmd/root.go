package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/kanado/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "kanado",
	Short: "Katakana spaced-repetition trainer",
	Long:  "Kanado — learn the katakana syllabary through lessons and spaced-repetition reviews, served over a local HTTP API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.BindFlags(viper.GetViper(), rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves flags, KANADO_* env vars, and defaults.
func loadConfig() (*config.Config, error) {
	return config.New(viper.GetViper())
}
