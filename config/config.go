package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// RPCEndpointKey is the url of the ethereum JSON-RPC node to talk to
	RPCEndpointKey = "RPC_ENDPOINT"
	// RPCRequestTimeoutKey are the milliseconds to wait for HTTP responses before timeouts
	RPCRequestTimeoutKey = "RPC_REQUEST_TIMEOUT"
	// ChainIDKey is the EIP155 chain id transactions are signed for
	ChainIDKey = "CHAIN_ID"
	// DatadirKey is the local data directory to store the internal state of daemon
	DatadirKey = "DATA_DIR_PATH"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// VaultKdfIterationsKey is the number of PBKDF2 rounds used to encrypt new vaults
	VaultKdfIterationsKey = "VAULT_KDF_ITERATIONS"
	// MaxAccountsKey is the max number of accounts a single vault can derive
	MaxAccountsKey = "MAX_ACCOUNTS"
	// ConfirmIntervalKey is the interval in milliseconds between transaction receipt polls
	ConfirmIntervalKey = "CONFIRM_INTERVAL"
	// ConfirmLimitKey represents the number of requests per second the confirmer makes to the node
	ConfirmLimitKey = "CONFIRM_LIMIT"

	DbLocation = "db"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("ethvault-daemon", false)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("ETHVAULT")
	vip.AutomaticEnv()

	vip.SetDefault(RPCEndpointKey, "http://localhost:8545")
	vip.SetDefault(RPCRequestTimeoutKey, 15000)
	vip.SetDefault(ChainIDKey, 1)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(VaultKdfIterationsKey, 600000)
	vip.SetDefault(MaxAccountsKey, 10)
	vip.SetDefault(ConfirmIntervalKey, 5000)
	vip.SetDefault(ConfirmLimitKey, 10)
	vip.SetDefault(DatadirKey, defaultDatadir)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

//GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

//GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

//GetUint64 ...
func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

//GetDuration returns the value of the given key as milliseconds
func GetDuration(key string) time.Duration {
	return time.Duration(vip.GetInt(key)) * time.Millisecond
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the directory holding the badger stores
func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// IsSet returns whether the give key is set
func IsSet(key string) bool {
	return vip.IsSet(key)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}

	rpcEndpoint := GetString(RPCEndpointKey)
	if _, err := url.Parse(rpcEndpoint); err != nil {
		return fmt.Errorf("rpc endpoint is not a valid url: %s", err)
	}

	if GetUint64(ChainIDKey) == 0 {
		return fmt.Errorf("chain id must not be zero")
	}

	if GetInt(VaultKdfIterationsKey) <= 0 {
		return fmt.Errorf("vault kdf iterations must be a positive number")
	}

	if GetInt(MaxAccountsKey) <= 0 {
		return fmt.Errorf("max accounts must be a positive number")
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDbDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
