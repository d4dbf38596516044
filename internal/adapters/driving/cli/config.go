package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage extraction settings",
	Long: `View and adjust the extraction tunables.

Available keys:
  trigger_phrase     phrase marking the start of the PDF description
  window_chars       characters kept from the trigger phrase onward
  max_words          word cap when the trigger phrase is absent
  xml_max_chars      character cap for EP XML text
  max_archive_depth  nested ZIP traversal limit`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cmd.Printf("trigger_phrase:     %s\n", settings.TriggerPhrase)
	cmd.Printf("window_chars:       %d\n", settings.WindowChars)
	cmd.Printf("max_words:          %d\n", settings.MaxWords)
	cmd.Printf("xml_max_chars:      %d\n", settings.XMLMaxChars)
	cmd.Printf("max_archive_depth:  %d\n", settings.MaxArchiveDepth)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "trigger_phrase":
		settings.TriggerPhrase = value
	case "window_chars", "max_words", "xml_max_chars", "max_archive_depth":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s requires a positive integer, got %q", key, value)
		}
		switch key {
		case "window_chars":
			settings.WindowChars = n
		case "max_words":
			settings.MaxWords = n
		case "xml_max_chars":
			settings.XMLMaxChars = n
		case "max_archive_depth":
			settings.MaxArchiveDepth = n
		}
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}
