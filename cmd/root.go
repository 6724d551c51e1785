package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qamap/internal/config"
	"qamap/internal/tui"
)

var version = "0.1.0"

var bad = color.New(color.FgRed)

var rootCmd = &cobra.Command{
	Use:           "qamap",
	Short:         "Question/answer map editor for the terminal",
	Long:          "qamap lays out question and answer boxes on a canvas and links them with the mouse.",
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		bad.Fprintf(os.Stderr, "qamap: %v\n", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/qamap/qamap.toml or ~/.qamap.toml)")
	rootCmd.PersistentFlags().String("debug-log", "", "write debug logging to this file")
	_ = viper.BindPFlag("debug_log", rootCmd.PersistentFlags().Lookup("debug-log"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path := findConfig(); path != "" {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("QAMAP")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// findConfig returns the first config file that exists, or "".
func findConfig() string {
	var candidates []string
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "qamap", "qamap.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".qamap.toml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func runEditor(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "qamap")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
		logger.Printf("starting qamap %s (config %q)", version, viper.ConfigFileUsed())
	}

	m, err := tui.New(cfg, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if viper.ConfigFileUsed() != "" {
		config.Watch(func(c config.Config, err error) {
			p.Send(tui.ConfigMsg{Config: c, Err: err})
		})
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
