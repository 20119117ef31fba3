package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ethvault-network/ethvault-daemon/pkg/mathutil"
)

var balance = cli.Command{
	Name:  "balance",
	Usage: "show the ether balance of an address",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "address",
			Usage: "the address to query",
		},
	},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	service, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	wei, err := service.GetBalance(context.Background(), ctx.String("address"))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf(
		"%s ETH (%s wei)\n",
		mathutil.FromBaseUnits(wei, mathutil.EtherDecimals), wei,
	)
	return nil
}
