package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var unlockwallet = cli.Command{
	Name:  "unlock",
	Usage: "unlock the vault of the given address with the given password",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "address",
			Usage: "the address of the vault to unlock",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "the password used to encrypt the mnemonic",
		},
	},
	Action: unlockWalletAction,
}

func unlockWalletAction(ctx *cli.Context) error {
	service, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := service.UnlockWallet(
		context.Background(), ctx.String("address"), ctx.String("password"),
	); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Wallet is unlocked")
	return nil
}
