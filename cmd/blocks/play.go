package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	engine "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing. The mode defaults to normal.

Modes:
  normal     - Classic endless play
  timed      - Score as much as possible before the clock runs out
  bottomsUp  - The board is drawn upside down

Controls:
  Left/Right  - Move
  Up/X        - Rotate
  Down        - Soft drop
  Space       - Hard drop
  C           - Hold
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  blocks play
  blocks play timed
  blocks play bottomsUp --difficulty easy
  blocks play --config ./my-blocks.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// resolveGameID accepts a mode name or a registered game id.
func resolveGameID(arg string) (string, error) {
	if arg == "" {
		return blocks.IDNormal, nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}
	mode, err := engine.ParseMode(arg)
	if err != nil {
		return "", fmt.Errorf("unknown mode %q", arg)
	}
	return blocks.IDForMode(mode), nil
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveGameID(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available modes.")
		os.Exit(1)
	}

	cfg := terminalConfig()
	backend := openBackend()

	game, err := registry.Create(gameID)
	if err != nil {
		backend.Close()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, backend, cfg)

	// Close before a potential exit
	if err := backend.Close(); err != nil {
		logger.Warn("closing storage", "error", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
