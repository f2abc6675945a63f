/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/realmkeeper/realmkeeper/cmd/realmd/cmd"

func main() {
	cmd.Execute()
}
