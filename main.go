package main

import "github.com/envelope-zero/ledger/cmd"

func main() {
	cmd.Execute()
}
