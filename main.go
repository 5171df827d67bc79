package main

import "shoplist/internal/app"

func main() {
	app.Main()
}
