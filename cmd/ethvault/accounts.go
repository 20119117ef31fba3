package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var accounts = cli.Command{
	Name:  "accounts",
	Usage: "list the derived accounts of a vault",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "address",
			Usage: "the address of the vault",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "the password used to encrypt the mnemonic",
		},
	},
	Action: listAccountsAction,
}

var deriveaccount = cli.Command{
	Name:  "derive",
	Usage: "derive the account at the next unused index of a vault",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "address",
			Usage: "the address of the vault",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "the password used to encrypt the mnemonic",
		},
	},
	Action: deriveAccountAction,
}

func listAccountsAction(ctx *cli.Context) error {
	service, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	list, err := service.ListAccounts(
		context.Background(), ctx.String("address"), ctx.String("password"),
	)
	if err != nil {
		return err
	}

	fmt.Println()
	for _, account := range list {
		fmt.Printf("%d  %s\n", account.AccountIndex, account.Address)
	}
	return nil
}

func deriveAccountAction(ctx *cli.Context) error {
	service, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := service.DeriveNextAccount(
		context.Background(), ctx.String("address"), ctx.String("password"),
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("account %d derived\n", account.AccountIndex)
	fmt.Println("address:", account.Address)
	return nil
}
