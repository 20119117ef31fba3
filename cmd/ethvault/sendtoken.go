package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/ethvault-network/ethvault-daemon/internal/core/application"
)

var sendtoken = cli.Command{
	Name:  "sendtoken",
	Usage: "send an amount of an ERC20 token to an address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "key",
			Usage: "the hex private key of the sending account",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "the address of the token contract",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "the recipient address",
		},
		&cli.StringFlag{
			Name:  "amount",
			Usage: "the amount of tokens to send, as a decimal string",
		},
		&cli.IntFlag{
			Name:  "decimals",
			Usage: "the token decimals, queried from the contract if omitted",
		},
		&cli.BoolFlag{
			Name:  "wait",
			Usage: "wait for the transaction to be mined",
		},
	},
	Action: sendTokenAction,
}

func sendTokenAction(ctx *cli.Context) error {
	opts := application.SendTokenOpts{
		PrivateKey:   ctx.String("key"),
		TokenAddress: ctx.String("token"),
		To:           ctx.String("to"),
		Amount:       ctx.String("amount"),
		Decimals:     ctx.Int("decimals"),
	}

	return runTransfer(
		ctx.Bool("wait"),
		func(service application.TransferService) (string, error) {
			return service.SendToken(context.Background(), opts)
		},
	)
}
