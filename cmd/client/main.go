package main

import "github.com/joshgeng1116/TodoApp/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	// Stdout belongs to the TUI; logs go to a file next to the binary.
	app.MustInitFileLogger("todo-client.log")

	app.MustRunClient()
}
