package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arbiterhq/arbiter/internal/cache"
	"github.com/spf13/cobra"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the extraction cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached extraction results",
	Long: `Clear removes every cached claim set so the next run re-extracts
all chronicle posts through the backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cacheDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("error finding home directory: %w", err)
			}
			dir = filepath.Join(home, ".arbiter", "cache")
		}

		store := cache.NewClaimStore(cache.NewDiskCache(dir))
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}

		fmt.Printf("Cleared extraction cache: %s\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheClearCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "extraction cache directory (default: $HOME/.arbiter/cache)")
}
