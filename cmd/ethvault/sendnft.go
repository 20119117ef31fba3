package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/ethvault-network/ethvault-daemon/internal/core/application"
)

var sendnft = cli.Command{
	Name:  "sendnft",
	Usage: "transfer an ERC721 token to an address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "key",
			Usage: "the hex private key of the owning account",
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
			Name:  "id",
			Usage: "the token id, as a decimal integer string",
		},
		&cli.BoolFlag{
			Name:  "wait",
			Usage: "wait for the transaction to be mined",
		},
	},
	Action: sendNFTAction,
}

func sendNFTAction(ctx *cli.Context) error {
	opts := application.SendNFTOpts{
		PrivateKey:   ctx.String("key"),
		TokenAddress: ctx.String("token"),
		To:           ctx.String("to"),
		TokenID:      ctx.String("id"),
	}

	return runTransfer(
		ctx.Bool("wait"),
		func(service application.TransferService) (string, error) {
			return service.SendNFT(context.Background(), opts)
		},
	)
}
