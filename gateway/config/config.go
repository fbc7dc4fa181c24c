package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/lidofinance/cfp-gateway/ledger"
)

const (
	EventsSinkNone  = "none"
	EventsSinkFile  = "file"
	EventsSinkKafka = "kafka"

	DefaultDerivationPath = "m/44'/60'/0'/0/0"
)

type ContractsConfig struct {
	CFPFactory       string `mapstructure:"cfp_factory"`
	ENSRegistry      string `mapstructure:"ens_registry"`
	PublicResolver   string `mapstructure:"public_resolver"`
	ReverseRegistrar string `mapstructure:"reverse_registrar"`
	CallsRegistrar   string `mapstructure:"calls_registrar"`
	UsersRegistrar   string `mapstructure:"users_registrar"`
}

type EventsConfig struct {
	Sink                string        `mapstructure:"sink"`
	FilePath            string        `mapstructure:"file_path"`
	FileLock            string        `mapstructure:"file_lock"`
	KafkaBroker         string        `mapstructure:"kafka_broker"`
	KafkaTopic          string        `mapstructure:"kafka_topic"`
	KafkaTrustStorePath string        `mapstructure:"kafka_truststore_path"`
	KafkaCredentials    string        `mapstructure:"kafka_credentials"`
	KafkaTimeout        time.Duration `mapstructure:"kafka_timeout"`
}

type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`
	CORSOrigin string `mapstructure:"cors_origin"`
	Debug      bool   `mapstructure:"debug"`

	RPCURL             string `mapstructure:"rpc_url"`
	Mnemonic           string `mapstructure:"mnemonic"`
	MnemonicPassphrase string `mapstructure:"mnemonic_passphrase"`
	DerivationPath     string `mapstructure:"derivation_path"`

	Contracts ContractsConfig `mapstructure:"contracts"`

	StateDBDSN      string        `mapstructure:"state_dbdsn"`
	LockFile        string        `mapstructure:"lock_file"`
	TxWaitTimeout   time.Duration `mapstructure:"tx_wait_timeout"`
	ReconcilePeriod time.Duration `mapstructure:"reconcile_period"`
	CFPCacheSize    int           `mapstructure:"cfp_cache_size"`

	Events EventsConfig `mapstructure:"events"`
}

// legacyEnv lists the environment names used by the deployment scripts.
var legacyEnv = map[string][]string{
	"listen_addr":                 {"CFP_LISTEN_ADDR"},
	"cors_origin":                 {"CFP_CORS_ORIGIN", "FRONTEND_URL"},
	"rpc_url":                     {"CFP_RPC_URL", "GANACHE_URL"},
	"mnemonic":                    {"CFP_MNEMONIC", "MNEMONIC"},
	"contracts.cfp_factory":       {"CFP_CONTRACTS_CFP_FACTORY", "CFP_FACTORY_ADDRESS"},
	"contracts.ens_registry":      {"CFP_CONTRACTS_ENS_REGISTRY", "ENS_REGISTRY_ADDRESS"},
	"contracts.public_resolver":   {"CFP_CONTRACTS_PUBLIC_RESOLVER", "PUBLIC_RESOLVER_ADDRESS"},
	"contracts.reverse_registrar": {"CFP_CONTRACTS_REVERSE_REGISTRAR", "REVERSE_REGISTRAR_ADDRESS"},
	"contracts.calls_registrar":   {"CFP_CONTRACTS_CALLS_REGISTRAR", "LLAMADOS_REGISTRAR_ADDRESS"},
	"contracts.users_registrar":   {"CFP_CONTRACTS_USERS_REGISTRAR", "USUARIOS_REGISTRAR_ADDRESS"},
}

// NewViper returns a viper instance with defaults and environment bindings set.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("listen_addr", "localhost:3000")
	v.SetDefault("cors_origin", "http://localhost:5173")
	v.SetDefault("rpc_url", "http://127.0.0.1:8545")
	v.SetDefault("debug", false)
	v.SetDefault("mnemonic_passphrase", "")
	v.SetDefault("derivation_path", DefaultDerivationPath)
	v.SetDefault("state_dbdsn", "./cfp_gateway_state")
	v.SetDefault("lock_file", "/tmp/cfp_gateway.lock")
	v.SetDefault("tx_wait_timeout", 2*time.Minute)
	v.SetDefault("reconcile_period", 15*time.Second)
	v.SetDefault("cfp_cache_size", 1024)
	v.SetDefault("events.sink", EventsSinkNone)
	v.SetDefault("events.file_path", "./cfp_gateway_events")
	v.SetDefault("events.file_lock", "")
	v.SetDefault("events.kafka_broker", "")
	v.SetDefault("events.kafka_truststore_path", "")
	v.SetDefault("events.kafka_credentials", "")
	v.SetDefault("events.kafka_topic", "cfp_events")
	v.SetDefault("events.kafka_timeout", 10*time.Second)

	v.SetEnvPrefix("CFP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range legacyEnv {
		_ = v.BindEnv(append([]string{key}, names...)...)
	}

	return v
}

// Load reads the optional config file and decodes the configuration.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks everything that can be checked before dialing the node.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen_addr is empty")
	}
	if c.RPCURL == "" {
		return errors.New("rpc_url is empty")
	}
	if strings.TrimSpace(c.Mnemonic) == "" {
		return errors.New("mnemonic is empty")
	}
	if c.CFPCacheSize <= 0 {
		return fmt.Errorf("cfp_cache_size must be positive, got %d", c.CFPCacheSize)
	}
	if c.TxWaitTimeout < 0 || c.ReconcilePeriod < 0 {
		return errors.New("tx_wait_timeout and reconcile_period must not be negative")
	}

	for key, value := range map[string]string{
		"contracts.cfp_factory":       c.Contracts.CFPFactory,
		"contracts.ens_registry":      c.Contracts.ENSRegistry,
		"contracts.public_resolver":   c.Contracts.PublicResolver,
		"contracts.reverse_registrar": c.Contracts.ReverseRegistrar,
		"contracts.calls_registrar":   c.Contracts.CallsRegistrar,
		"contracts.users_registrar":   c.Contracts.UsersRegistrar,
	} {
		if !common.IsHexAddress(value) {
			return fmt.Errorf("%s is not a valid address: %q", key, value)
		}
	}

	switch c.Events.Sink {
	case EventsSinkNone, "":
	case EventsSinkFile:
		if c.Events.FilePath == "" {
			return errors.New("events.file_path is empty")
		}
	case EventsSinkKafka:
		if c.Events.KafkaBroker == "" || c.Events.KafkaTopic == "" {
			return errors.New("events.kafka_broker and events.kafka_topic are required for the kafka sink")
		}
	default:
		return fmt.Errorf("unknown events.sink %q", c.Events.Sink)
	}

	return nil
}

func (c *Config) Addresses() ledger.Addresses {
	return ledger.Addresses{
		CFPFactory:       common.HexToAddress(c.Contracts.CFPFactory),
		ENSRegistry:      common.HexToAddress(c.Contracts.ENSRegistry),
		PublicResolver:   common.HexToAddress(c.Contracts.PublicResolver),
		ReverseRegistrar: common.HexToAddress(c.Contracts.ReverseRegistrar),
		CallsRegistrar:   common.HexToAddress(c.Contracts.CallsRegistrar),
		UsersRegistrar:   common.HexToAddress(c.Contracts.UsersRegistrar),
	}
}
