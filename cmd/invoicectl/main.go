package main

import "github.com/SscSPs/invoicely/internal/cli"

func main() {
	cli.Execute()
}
