package main

import (
	"log"

	"github.com/spf13/cobra"
)

const (
	flagHost        = "host"
	flagPrivateKey  = "private_key"
	flagFactory     = "factory"
	flagCallID      = "call_id"
	flagClosingTime = "closing_time"
	flagCallName    = "call_name"
	flagDescription = "description"
	flagSigned      = "signed"
)

func init() {
	rootCmd.PersistentFlags().String(flagHost, "localhost:3000", "Gateway address")
	rootCmd.PersistentFlags().String(flagPrivateKey, "", "Hex encoded private key used to sign requests")
	rootCmd.PersistentFlags().String(flagFactory, "", "CFP factory address, fetched from the gateway when empty")
}

var rootCmd = &cobra.Command{
	Use:   "cfp_cli",
	Short: "CFP gateway client utilities",
}

func main() {
	rootCmd.AddCommand(
		genKeyCommand(),
		genMnemonicCommand(),
		genCallIDCommand(),
		hashFileCommand(),
		signRegisterCommand(),
		signCallCommand(),
		signProposalCommand(),
		registerCommand(),
		createCallCommand(),
		registerProposalCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute root command: %v", err)
	}
}
