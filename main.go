package main

import (
	"os"

	"github.com/saulo-duarte/quizgenie-lambda/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
