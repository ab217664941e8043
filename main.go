package main

import "diskcull/internal/app"

func main() {
	app.Run()
}
