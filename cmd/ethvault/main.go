package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ethvault-network/ethvault-daemon/config"
	"github.com/ethvault-network/ethvault-daemon/internal/core/application"
	dbbadger "github.com/ethvault-network/ethvault-daemon/internal/infrastructure/storage/db/badger"
	"github.com/ethvault-network/ethvault-daemon/pkg/confirmer"
	"github.com/ethvault-network/ethvault-daemon/pkg/ethrpc"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "ethvault CLI"
	app.Usage = "Command line interface for managing ethereum HD wallet vaults"
	app.Commands = append(
		app.Commands,
		&genseed,
		&initwallet,
		&unlockwallet,
		&changepassword,
		&listvaults,
		&accounts,
		&deriveaccount,
		&balance,
		&send,
		&sendtoken,
		&sendnft,
		&txstatus,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[ethvault] %v\n", err)
	os.Exit(1)
}

func getRPCService() (ethrpc.Service, error) {
	return ethrpc.NewService(
		config.GetString(config.RPCEndpointKey),
		config.GetDuration(config.RPCRequestTimeoutKey),
	)
}

// getAccountService wires the badger backed repository and the RPC client
// into an AccountService. The returned cleanup closes the database.
func getAccountService() (application.AccountService, func(), error) {
	dbManager, err := dbbadger.NewDbManager(config.GetDbDir(), nil)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { dbManager.Close() }

	rpcService, err := getRPCService()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	service := application.NewAccountService(
		dbbadger.NewVaultRepositoryImpl(dbManager),
		rpcService,
		config.GetInt(config.VaultKdfIterationsKey),
		uint32(config.GetInt(config.MaxAccountsKey)),
	)
	return service, cleanup, nil
}

func getTransferService() (application.TransferService, error) {
	rpcService, err := getRPCService()
	if err != nil {
		return nil, err
	}

	return application.NewTransferService(
		rpcService, nil, config.GetUint64(config.ChainIDKey),
	)
}

// runTransfer broadcasts a transaction through sendFn and prints its hash.
// With wait set it also polls the node until the transaction is mined and
// reports its final status.
func runTransfer(
	wait bool,
	sendFn func(application.TransferService) (string, error),
) error {
	if !wait {
		service, err := getTransferService()
		if err != nil {
			return err
		}
		txHash, err := sendFn(service)
		if err != nil {
			return err
		}
		printTxHash(txHash)
		return nil
	}

	rpcService, err := getRPCService()
	if err != nil {
		return err
	}
	confirmerService := confirmer.NewService(confirmer.Opts{
		RPCService:             rpcService,
		IntervalInMilliseconds: config.GetInt(config.ConfirmIntervalKey),
		RPCRequestsPerSecond:   config.GetInt(config.ConfirmLimitKey),
		ErrorHandler: func(err error) {
			log.WithError(err).Warn("error while polling for confirmation")
		},
	})
	go confirmerService.Start()

	service, err := application.NewTransferService(
		rpcService, confirmerService, config.GetUint64(config.ChainIDKey),
	)
	if err != nil {
		return err
	}

	txHash, err := sendFn(service)
	if err != nil {
		return err
	}
	printTxHash(txHash)
	fmt.Println("waiting for confirmation...")

	listener := application.NewBlockchainListener(confirmerService)
	event := listener.WaitForTransaction(txHash)
	confirmerService.Stop()
	if event == nil {
		return fmt.Errorf("confirmer stopped before transaction was mined")
	}

	if event.Type() == confirmer.TransactionConfirmed {
		fmt.Printf(
			"transaction confirmed in block %d (gas used %d)\n",
			event.BlockNumber, event.GasUsed,
		)
	} else {
		fmt.Printf("transaction reverted in block %d\n", event.BlockNumber)
	}
	return nil
}

func printTxHash(txHash string) {
	fmt.Println()
	fmt.Println("transaction broadcasted")
	fmt.Println("hash:", txHash)
}
