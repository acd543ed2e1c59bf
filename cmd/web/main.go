package main

import "iconsherald/internal/app"

func main() {
	app.Run()
}
