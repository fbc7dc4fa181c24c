package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"github.com/lidofinance/cfp-gateway/events"
	"github.com/lidofinance/cfp-gateway/events/file_events"
	"github.com/lidofinance/cfp-gateway/events/kafka_events"
	"github.com/lidofinance/cfp-gateway/gateway/api/http_api"
	"github.com/lidofinance/cfp-gateway/gateway/config"
	"github.com/lidofinance/cfp-gateway/gateway/modules/keystore"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/services"
	"github.com/lidofinance/cfp-gateway/ledger"
)

const (
	flagConfig     = "config"
	flagListenAddr = "listen_addr"
	flagRPCURL     = "rpc_url"
	flagStateDBDSN = "state_dbdsn"
	flagDebug      = "debug"

	shutdownTimeout = 10 * time.Second
)

func init() {
	rootCmd.PersistentFlags().String(flagConfig, "", "Path to a config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String(flagListenAddr, "", "Listen Address, overrides the config")
	rootCmd.PersistentFlags().String(flagRPCURL, "", "Ethereum JSON-RPC endpoint, overrides the config")
	rootCmd.PersistentFlags().String(flagStateDBDSN, "", "State DBDSN, overrides the config")
	rootCmd.PersistentFlags().Bool(flagDebug, false, "Enable debug logging")
}

func readConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	v := config.NewViper()
	for _, name := range []string{flagListenAddr, flagRPCURL, flagStateDBDSN, flagDebug} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err = v.BindPFlag(name, f); err != nil {
				return nil, err
			}
		}
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSink(cfg config.EventsConfig) (events.Sink, error) {
	switch cfg.Sink {
	case config.EventsSinkFile:
		if cfg.FileLock != "" {
			return file_events.NewFileSink(cfg.FilePath, cfg.FileLock)
		}
		return file_events.NewFileSink(cfg.FilePath)
	case config.EventsSinkKafka:
		tlsConfig, err := kafka_events.GetTLSConfig(cfg.KafkaTrustStorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create tls config: %w", err)
		}
		creds, err := kafka_events.ParseCredentials(cfg.KafkaCredentials)
		if err != nil {
			return nil, err
		}
		return kafka_events.NewKafkaSink(cfg.KafkaBroker, cfg.KafkaTopic, tlsConfig, creds, cfg.KafkaTimeout), nil
	default:
		return events.NopSink{}, nil
	}
}

func startGatewayCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "start",
		Short:        "starts the CFP gateway",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %w", err)
			}
			return runGateway(cfg)
		},
	}
}

// runGateway serves until SIGINT or SIGTERM. Every resource acquired here is
// released on return, including on failed startup.
func runGateway(cfg *config.Config) error {
	logger.SetDebug(cfg.Debug)
	gwLogger := logger.NewLogger("gateway")

	lock, err := keystore.AcquireLock(cfg.LockFile)
	if err != nil {
		return fmt.Errorf("failed to acquire operator lock: %w", err)
	}
	defer lock.Release()

	key, err := keystore.KeyFromMnemonic(cfg.Mnemonic, cfg.MnemonicPassphrase, cfg.DerivationPath)
	if err != nil {
		return fmt.Errorf("failed to derive operator key: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l, err := ledger.DialEthLedger(ctx, cfg.RPCURL, key.PrivateKey, cfg.Addresses())
	if err != nil {
		return fmt.Errorf("failed to init ledger: %w", err)
	}

	st, err := state.NewLevelDBState(cfg.StateDBDSN)
	if err != nil {
		return fmt.Errorf("failed to init state: %w", err)
	}
	defer st.Close()

	sink, err := newSink(cfg.Events)
	if err != nil {
		return fmt.Errorf("failed to init events sink: %w", err)
	}
	defer sink.Close()

	sp := &services.ServiceProvider{}
	sp.SetLogger(gwLogger)
	sp.SetLedger(l)
	sp.SetState(st)
	sp.SetSink(sink)
	if err = services.InitServices(cfg, sp); err != nil {
		return fmt.Errorf("failed to init services: %w", err)
	}

	server := &http_api.RESTApiProvider{}
	if err = server.NewServer(cfg, sp); err != nil {
		return fmt.Errorf("failed to init HTTP server: %w", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-sigs:
		case <-ctx.Done():
			return
		}

		log.Println("Received signal, stopping gateway...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := server.Stop(shutdownCtx); err != nil {
			log.Printf("Failed to stop HTTP server: %v", err)
		}
	}()

	go func() {
		gwLogger.Log("starting to reconcile pending transactions...")
		if err := sp.GetTransactionService().Poll(ctx); err != nil && ctx.Err() == nil {
			gwLogger.Error("Reconciler stopped: %v", err)
		}
	}()

	gwLogger.Log("operator %s, listening on %s", key.Address.Hex(), cfg.ListenAddr)
	if err = server.Start(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	log.Println("Gateway stopped, exiting")
	return nil
}

func operatorAddressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operator_address",
		Short: "prints the address derived from the configured mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %w", err)
			}
			key, err := keystore.KeyFromMnemonic(cfg.Mnemonic, cfg.MnemonicPassphrase, cfg.DerivationPath)
			if err != nil {
				return fmt.Errorf("failed to derive operator key: %w", err)
			}
			fmt.Println(key.Address.Hex())
			return nil
		},
	}
}

func genCallIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen_call_id",
		Short: "generates a random callId",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(hexutil.Encode(frand.Bytes(32)))
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "cfp_gateway_d",
	Short: "CFP registry gateway daemon",
}

func main() {
	rootCmd.AddCommand(
		startGatewayCommand(),
		operatorAddressCommand(),
		genCallIDCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute root command: %v", err)
	}
}
