package main

import "github.com/hoopside/hoopside-backend/cmd"

func main() {
	cmd.Execute()
}
