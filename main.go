package main

import (
	"os"

	commitcmd "github.com/ERUDITE137/shikhar-finance/cmd/commit"
	"github.com/ERUDITE137/shikhar-finance/cmd/receipt"
	"github.com/ERUDITE137/shikhar-finance/cmd/root"
	"github.com/ERUDITE137/shikhar-finance/cmd/statement"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(receipt.Cmd)
	root.Cmd.AddCommand(statement.Cmd)
	root.Cmd.AddCommand(commitcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
