package main

import "github.com/dbsmedya/goanonym/cmd/goanonym/cmd"

func main() {
	cmd.Execute()
}
