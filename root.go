package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var version = "dev"

// Exit codes returned by main.
const (
	exitUsage    = 1
	exitGraphics = 3
)

// exitError carries the process exit code for a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Tower of Hanoi in the terminal",
	Long: `Move the tower of discs from the first peg to the last one.
Digit keys pick the source peg, then the destination peg.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runGame,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "hanoi", version)
	},
}

func init() {
	addGameFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a YAML config file (default ~/.hanoi.yaml)")
	cmd.Flags().Int("pegs", defaultPegs, "Number of pegs (2-10)")
	cmd.Flags().Int("discs", defaultDiscs, "Number of discs (1-60)")
	cmd.Flags().Int("step", defaultStep, "Distance a disc travels per frame")
}

// configFromFlags loads the config file and applies any flags the user set.
func configFromFlags(cmd *cobra.Command) (*Config, error) {
	path, _ := cmd.Flags().GetString("config")
	config, err := loadConfig(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("pegs") {
		config.Pegs, _ = cmd.Flags().GetInt("pegs")
	}
	if cmd.Flags().Changed("discs") {
		config.Discs, _ = cmd.Flags().GetInt("discs")
	}
	if cmd.Flags().Changed("step") {
		config.Step, _ = cmd.Flags().GetInt("step")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	config, err := configFromFlags(cmd)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	initLogger("hanoi")
	defer syncLogger()
	L().Infow("starting", "version", version, "pegs", config.Pegs, "discs", config.Discs)

	p := tea.NewProgram(initialModel(config), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		L().Errorw("terminal program failed", "error", err)
		return &exitError{code: exitGraphics, err: fmt.Errorf("error running program: %w", err)}
	}
	return nil
}
