package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshgeng1116/TodoApp/internal/client"
	"github.com/joshgeng1116/TodoApp/internal/config"
	"github.com/joshgeng1116/TodoApp/internal/tui"
)

func MustRunClient() {
	cfg := config.Global().Client

	apiClient := client.New(globalLogger, cfg.APIBaseURL, cfg.RequestTimeout)

	globalLogger.Info().
		Str("api", cfg.APIBaseURL).
		Msg("starting terminal client")

	program := tea.NewProgram(tui.NewModel(apiClient), tea.WithAltScreen())
	_, err := program.Run()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("terminal client failed")
		panic(err)
	}
	globalLogger.Info().Msg("terminal client exited")
}
