package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var listvaults = cli.Command{
	Name:   "vaults",
	Usage:  "list the stored vaults",
	Action: listVaultsAction,
}

func listVaultsAction(ctx *cli.Context) error {
	service, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	vaults, err := service.ListVaults(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	for _, vault := range vaults {
		fmt.Printf(
			"%s  %s  created %s\n",
			vault.ID, vault.Address,
			vault.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return nil
}
