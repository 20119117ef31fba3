package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var txstatus = cli.Command{
	Name:  "txstatus",
	Usage: "show the mining status of a broadcasted transaction",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "hash",
			Usage: "the transaction hash",
		},
	},
	Action: txStatusAction,
}

func txStatusAction(ctx *cli.Context) error {
	service, err := getTransferService()
	if err != nil {
		return err
	}

	receipt, err := service.GetTransactionStatus(
		context.Background(), ctx.String("hash"),
	)
	if err != nil {
		return err
	}

	fmt.Println()
	if receipt == nil {
		fmt.Println("transaction is still pending")
		return nil
	}

	status := "confirmed"
	if !receipt.Success {
		status = "reverted"
	}
	fmt.Printf(
		"transaction %s in block %d (gas used %d)\n",
		status, receipt.BlockNumber, receipt.GasUsed,
	)
	return nil
}
