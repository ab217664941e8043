package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"diskcull/internal/config"
	"diskcull/internal/services"
	"diskcull/internal/state"
	"diskcull/internal/ui"
)

func Run() {
	base := config.DefaultConfig()
	loaded, loadErr := config.LoadConfig()
	if loadErr == nil {
		base = loaded
	}
	cfg := config.ParseFlags(base)
	initialState := state.NewState(cfg)

	var scanner services.Scanner
	var finder services.DuplicateFinder
	var actions services.Actions
	if cfg.Demo {
		scanner = services.NewMockScanner()
		finder = services.NewMockDuplicates()
		actions = services.NewMockActions()
	} else {
		scanner = services.NewFSScanner()
		finder = services.NewFSDuplicates()
		actions = services.NewFSActions()
	}

	model := ui.NewModel(cfg, initialState, scanner, finder, actions)
	if loadErr != nil {
		model = model.WithStatus("Config warning: using defaults")
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		fmt.Println("DiskCull error:", err)
		return
	}
	if provider, ok := finalModel.(ui.ConfigProvider); ok {
		if err := config.SaveConfig(provider.ConfigSnapshot()); err != nil {
			fmt.Println("DiskCull config save error:", err)
		}
	}
}
