package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/ethvault-network/ethvault-daemon/internal/core/application"
)

var send = cli.Command{
	Name:  "send",
	Usage: "send ether to an address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "key",
			Usage: "the hex private key of the sending account",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "the recipient address",
		},
		&cli.StringFlag{
			Name:  "amount",
			Usage: "the amount of ether to send, as a decimal string",
		},
		&cli.BoolFlag{
			Name:  "wait",
			Usage: "wait for the transaction to be mined",
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	opts := application.SendEtherOpts{
		PrivateKey: ctx.String("key"),
		To:         ctx.String("to"),
		Amount:     ctx.String("amount"),
	}

	return runTransfer(
		ctx.Bool("wait"),
		func(service application.TransferService) (string, error) {
			return service.SendEther(context.Background(), opts)
		},
	)
}
