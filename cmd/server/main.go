package main

import "github.com/joshgeng1116/TodoApp/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustListenAndServeHTTP()
}
