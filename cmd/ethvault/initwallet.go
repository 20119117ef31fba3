package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var initwallet = cli.Command{
	Name:  "init",
	Usage: "initialize a new vault from a mnemonic seed",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "password",
			Usage: "the password used to encrypt the mnemonic",
		},
		&cli.StringFlag{
			Name:  "seed",
			Usage: "the mnemonic seed of the wallet",
		},
	},
	Action: initWalletAction,
}

func initWalletAction(ctx *cli.Context) error {
	service, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	var mnemonic []string
	if seed := ctx.String("seed"); len(seed) > 0 {
		mnemonic = strings.Split(seed, " ")
	}

	info, err := service.InitWallet(
		context.Background(), mnemonic, ctx.String("password"),
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Wallet is initialized. You can unlock")
	fmt.Println("address:", info.Address)
	fmt.Println("vault id:", info.ID)
	return nil
}
