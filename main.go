package main

import "github.com/dadrus/querybearer/cmd"

func main() {
	cmd.Execute()
}
