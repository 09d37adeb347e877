package main

import "github.com/studyhubhq/studyhub/internal/cli"

func main() {
	cli.Execute()
}
