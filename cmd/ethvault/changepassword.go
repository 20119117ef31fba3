package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var changepassword = cli.Command{
	Name:  "changepassword",
	Usage: "change the password protecting a vault",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "address",
			Usage: "the address of the vault",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "the current password",
		},
		&cli.StringFlag{
			Name:  "new_password",
			Usage: "the new password replacing the current one",
		},
	},
	Action: changePasswordAction,
}

func changePasswordAction(ctx *cli.Context) error {
	service, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := service.ChangePassphrase(
		context.Background(),
		ctx.String("address"),
		ctx.String("password"),
		ctx.String("new_password"),
	); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Password has been changed")
	return nil
}
