package main

import "watchparty_backend/internal/app"

func main() {
	app.RunOrDie()
}
