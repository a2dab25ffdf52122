package main

import (
	"eag.dev/backend/cmd/app"
)

// @title          Activity Catalog API
// @version        1.0.0
// @description    Browse, save, submit and moderate group activities.
// @BasePath       /api
func main() {
	app.Run()
}
