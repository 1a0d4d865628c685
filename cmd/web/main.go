package main

import "servio_backend/internal/app"

func main() {
	app.Run()
}
