package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persistent tool cache",
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd, cachePathCmd, cacheSchemaCmd)
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached tool results",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CacheFile()
		if err != nil {
			return err
		}
		if err := cache.New(path).Clear(); err != nil {
			return err
		}
		fmt.Println("cache cleared; the next scan starts fresh")
		return nil
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CacheFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var cacheSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the cache file",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cache.MarshalSchema(cache.FileSchema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
