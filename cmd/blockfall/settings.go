package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change persisted settings",
	Long: `Manage settings stored in the database. Persisted settings apply to
both local play and SSH sessions.

Examples:
  blockfall settings show
  blockfall settings shadow piece`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all persisted settings",
	Run:   runSettingsShow,
}

var settingsShadowCmd = &cobra.Command{
	Use:   "shadow <off|gray|piece>",
	Short: "Set the ghost piece style",
	Long: `Set how the ghost piece (the projected resting position of the
falling piece) is displayed:

  off    - No ghost piece
  gray   - Gray outline
  piece  - Same color as the falling piece`,
	Args: cobra.ExactArgs(1),
	Run:  runSettingsShadow,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsShadowCmd)
}

func openSettingsStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSettingsShow(cmd *cobra.Command, args []string) {
	store := openSettingsStore()
	defer store.Close()

	all, err := store.All()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No settings stored yet.")
		fmt.Println()
		fmt.Println("Run 'blockfall settings shadow <style>' to set one.")
		return
	}

	keys := make([]string, 0, len(all))
	maxKeyLen := 3 // "Key" header
	for k := range all {
		keys = append(keys, k)
		if len(k) > maxKeyLen {
			maxKeyLen = len(k)
		}
	}
	sort.Strings(keys)

	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Key", "Value")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "---", "-----")
	for _, k := range keys {
		fmt.Printf("  %-*s  %s\n", maxKeyLen, k, all[k])
	}
}

func runSettingsShadow(cmd *cobra.Command, args []string) {
	style, err := config.ParseShadowStyle(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Valid styles: %s\n", strings.Join(shadowStyleNames(), ", "))
		os.Exit(1)
	}

	store := openSettingsStore()
	defer store.Close()

	if err := store.SetShadowStyle(style); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving setting: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ghost piece style set to %q.\n", style)
}

func shadowStyleNames() []string {
	styles := config.ShadowStyles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return names
}
