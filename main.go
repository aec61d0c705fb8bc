package main

import "github.com/frahmantamala/expense-insights/cmd"

func main() {
	cmd.Execute()
}
