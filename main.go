package main

import "github.com/ecopsychologer/abc-tab-converter/cmd"

func main() {
	cmd.Execute()
}
