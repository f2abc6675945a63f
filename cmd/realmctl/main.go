/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/realmkeeper/realmkeeper/cmd/realmctl/cmd"

func main() {
	cmd.Execute()
}
