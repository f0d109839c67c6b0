package main

import "github.com/filmsurvey/ratedb/cmd"

func main() {
	cmd.Execute()
}
