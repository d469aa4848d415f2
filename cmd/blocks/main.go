// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks list              - List game modes
//	blocks play [mode]       - Play a mode (normal, timed, bottomsUp)
//	blocks menu              - Pick a mode interactively
//	blocks serve             - Start SSH server for remote play
//	blocks scores [mode]     - Show finished games and per-mode stats
//	blocks highscores        - Show the stored high score of every mode
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load a custom blocks.yaml
//	--difficulty <preset>  - easy, normal or hard
//	--store <backend>      - sqlite, file or memory
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagStore      string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "blocks"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks is a falling-block puzzle game that runs in your terminal,
locally or over SSH.

Available commands:
  list        - Show all game modes
  play        - Play a mode directly
  menu        - Interactive mode picker
  serve       - Start SSH server for remote play
  scores      - View finished games
  highscores  - View the best score of every mode

Examples:
  blocks play
  blocks play timed --difficulty hard
  blocks menu --store file
  blocks serve --ssh :2222
  blocks scores bottomsUp`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
		blocks.SetConfigPath(flagConfig)
		blocks.SetDifficultyPreset(flagDifficulty)
		blocks.SetLogger(logger)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom blocks config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Storage backend: sqlite, file, memory (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(highScoresCmd)
}

// loadConfig reads the configuration the flags point at.
func loadConfig() (config.BlocksConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BlocksConfig{}, err
	}
	cfg, err := config.Load(flagConfig, preset)
	if err != nil {
		return cfg, err
	}
	if flagStore != "" {
		cfg.Storage.Backend = flagStore
	}
	return cfg, nil
}

// openBackend opens the configured storage. When that fails the game still
// runs with in-memory high scores.
func openBackend() *storage.Backend {
	cfg, err := loadConfig()
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultBlocksConfig()
		if flagStore != "" {
			cfg.Storage.Backend = flagStore
		}
	}

	backend, err := cfg.OpenStorage()
	if err != nil {
		logger.Warn("could not open score storage, scores will not persist",
			"backend", cfg.Storage.Backend, "error", err)
		backend = storage.MemoryBackend()
	}
	blocks.SetHighScoreStore(backend.HighScores)
	return backend
}

// openHistory opens the configured storage and requires the game history.
func openHistory() (*storage.Backend, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	backend, err := cfg.OpenStorage()
	if err != nil {
		return nil, err
	}
	if backend.History == nil {
		backend.Close()
		return nil, fmt.Errorf("the %q backend keeps no game history, use --store sqlite", backend.Kind)
	}
	return backend, nil
}
