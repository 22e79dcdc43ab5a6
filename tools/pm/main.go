package main

import "github.com/zostay/go-mailcheck/tools/pm/cmd"

func main() {
	cmd.Execute()
}
