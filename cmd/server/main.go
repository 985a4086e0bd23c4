package main

import "orcamento-pro/backend/internal/app"

func main() {
	app.Run()
}
