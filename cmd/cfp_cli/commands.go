package main

import (
	"crypto/ecdsa"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"github.com/lidofinance/cfp-gateway/gateway/config"
	"github.com/lidofinance/cfp-gateway/gateway/modules/keystore"
	"github.com/lidofinance/cfp-gateway/verifier"
)

var (
	label   = color.New(color.FgCyan).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
)

func printField(name, value string) {
	fmt.Printf("%s: %s\n", label(name), value)
}

func readPrivateKey(cmd *cobra.Command) (*ecdsa.PrivateKey, error) {
	keyHex, err := cmd.Flags().GetString(flagPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %v", err)
	}
	if keyHex == "" {
		return nil, fmt.Errorf("--%s is required", flagPrivateKey)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return key, nil
}

func readFactory(cmd *cobra.Command) (common.Address, error) {
	factory, err := cmd.Flags().GetString(flagFactory)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read configuration: %v", err)
	}
	if factory != "" {
		if !verifier.IsValidAddress(factory) {
			return common.Address{}, fmt.Errorf("invalid factory address %q", factory)
		}
		return common.HexToAddress(factory), nil
	}
	host, err := cmd.Flags().GetString(flagHost)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to read configuration: %v", err)
	}
	return getFactoryAddressRequest(host)
}

func readHash32(value, name string) (common.Hash, error) {
	if !verifier.IsValidHash32(value) {
		return common.Hash{}, fmt.Errorf("%s must be a 0x-prefixed 32 byte hex value", name)
	}
	return common.HexToHash(value), nil
}

func signWith(key *ecdsa.PrivateKey, message []byte) (string, error) {
	return verifier.Sign(message, func(hash []byte) ([]byte, error) {
		return crypto.Sign(hash, key)
	})
}

func newCallID() string {
	return hexutil.Encode(frand.Bytes(32))
}

func genKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen_key",
		Short: "generates a secp256k1 private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := ecdsa.GenerateKey(crypto.S256(), frand.Reader)
			if err != nil {
				return fmt.Errorf("failed to generate key: %w", err)
			}
			printField("Private key", hexutil.Encode(crypto.FromECDSA(key)))
			printField("Address", crypto.PubkeyToAddress(key.PublicKey).Hex())
			return nil
		},
	}
}

func genMnemonicCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen_mnemonic",
		Short: "generates a mnemonic for the gateway operator and prints its default address",
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := keystore.NewMnemonic()
			if err != nil {
				return err
			}
			key, err := keystore.KeyFromMnemonic(mnemonic, "", config.DefaultDerivationPath)
			if err != nil {
				return fmt.Errorf("failed to derive key: %w", err)
			}
			printField("Mnemonic", mnemonic)
			printField("Address", key.Address.Hex())
			return nil
		},
	}
}

func genCallIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen_call_id",
		Short: "generates a random callId",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(newCallID())
		},
	}
}

func hashFileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash_file [file]",
		Args:  cobra.ExactArgs(1),
		Short: "prints the keccak256 hash of a proposal document",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := ioutil.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			fmt.Println(crypto.Keccak256Hash(data).Hex())
			return nil
		},
	}
}

func signRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sign_register",
		Short: "signs the registration message for the factory",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readPrivateKey(cmd)
			if err != nil {
				return err
			}
			factory, err := readFactory(cmd)
			if err != nil {
				return err
			}
			signature, err := signWith(key, verifier.RegistrationMessage(factory))
			if err != nil {
				return err
			}
			printField("Address", crypto.PubkeyToAddress(key.PublicKey).Hex())
			printField("Signature", signature)
			return nil
		},
	}
}

func signCallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sign_call [callId]",
		Args:  cobra.ExactArgs(1),
		Short: "signs the creation message of a call",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readPrivateKey(cmd)
			if err != nil {
				return err
			}
			callID, err := readHash32(args[0], "callId")
			if err != nil {
				return err
			}
			factory, err := readFactory(cmd)
			if err != nil {
				return err
			}
			signature, err := signWith(key, verifier.CallCreationMessage(factory, callID))
			if err != nil {
				return err
			}
			printField("Signature", signature)
			return nil
		},
	}
}

func signProposalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sign_proposal [proposal]",
		Args:  cobra.ExactArgs(1),
		Short: "signs a proposal hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readPrivateKey(cmd)
			if err != nil {
				return err
			}
			proposal, err := readHash32(args[0], "proposal")
			if err != nil {
				return err
			}
			signature, err := signWith(key, verifier.ProposalMessage(proposal))
			if err != nil {
				return err
			}
			printField("Signer", crypto.PubkeyToAddress(key.PublicKey).Hex())
			printField("Signature", signature)
			return nil
		},
	}
}

func registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "asks the gateway to authorize the signing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := cmd.Flags().GetString(flagHost)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			key, err := readPrivateKey(cmd)
			if err != nil {
				return err
			}
			factory, err := readFactory(cmd)
			if err != nil {
				return err
			}
			signature, err := signWith(key, verifier.RegistrationMessage(factory))
			if err != nil {
				return err
			}
			result, err := postRequest(host, "/register", map[string]string{
				"address":   crypto.PubkeyToAddress(key.PublicKey).Hex(),
				"signature": signature,
			})
			if err != nil {
				return fmt.Errorf("failed to register: %w", err)
			}
			fmt.Println(success(string(result)))
			return nil
		},
	}
}

func createCallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_call",
		Short: "creates a call signed by the local key",
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := cmd.Flags().GetString(flagHost)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			callIDHex, err := cmd.Flags().GetString(flagCallID)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			closingTime, err := cmd.Flags().GetString(flagClosingTime)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			callName, err := cmd.Flags().GetString(flagCallName)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			description, err := cmd.Flags().GetString(flagDescription)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}

			if callIDHex == "" {
				callIDHex = newCallID()
			}
			callID, err := readHash32(callIDHex, "callId")
			if err != nil {
				return err
			}
			key, err := readPrivateKey(cmd)
			if err != nil {
				return err
			}
			factory, err := readFactory(cmd)
			if err != nil {
				return err
			}
			signature, err := signWith(key, verifier.CallCreationMessage(factory, callID))
			if err != nil {
				return err
			}

			payload := map[string]string{
				"callId":      callID.Hex(),
				"closingTime": closingTime,
				"signature":   signature,
			}
			path := "/create"
			if callName != "" {
				path = "/create-with-ens"
				payload["callName"] = callName
				payload["description"] = description
			}
			result, err := postRequest(host, path, payload)
			if err != nil {
				return fmt.Errorf("failed to create call: %w", err)
			}
			printField("Call ID", callID.Hex())
			fmt.Println(success(string(result)))
			return nil
		},
	}
	cmd.Flags().String(flagCallID, "", "callId, random when empty")
	cmd.Flags().String(flagClosingTime, "", "Closing time, e.g. 2030-01-01T00:00:00Z")
	cmd.Flags().String(flagCallName, "", "ENS label to register for the call")
	cmd.Flags().String(flagDescription, "", "Description stored with the call name")
	return cmd
}

func registerProposalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register_proposal [callId] [proposal]",
		Args:  cobra.ExactArgs(2),
		Short: "registers a proposal hash in a call",
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := cmd.Flags().GetString(flagHost)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			signed, err := cmd.Flags().GetBool(flagSigned)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			callID, err := readHash32(args[0], "callId")
			if err != nil {
				return err
			}
			proposal, err := readHash32(args[1], "proposal")
			if err != nil {
				return err
			}

			payload := map[string]string{
				"callId":   callID.Hex(),
				"proposal": proposal.Hex(),
			}
			path := "/register-proposal"
			if signed {
				key, err := readPrivateKey(cmd)
				if err != nil {
					return err
				}
				signature, err := signWith(key, verifier.ProposalMessage(proposal))
				if err != nil {
					return err
				}
				path = "/register-proposal-with-signature"
				payload["signature"] = signature
				payload["signer"] = crypto.PubkeyToAddress(key.PublicKey).Hex()
			}
			result, err := postRequest(host, path, payload)
			if err != nil {
				return fmt.Errorf("failed to register proposal: %w", err)
			}
			fmt.Println(success(string(result)))
			return nil
		},
	}
	cmd.Flags().Bool(flagSigned, false, "Bind the proposal to a signature of the local key")
	return cmd
}
