package main

import "warehouse/internal/cli"

// @title           Warehouse Import Order API
// @version         1.0
// @description     Goods received notes (form 01-VT): import orders, their items and status lifecycle.
// @host            localhost:8080
// @BasePath        /
func main() {
	cli.Execute()
}
