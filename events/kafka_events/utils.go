package kafka_events

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	"github.com/segmentio/kafka-go/sasl/plain"
)

func GetTLSConfig(trustStorePath string) (*tls.Config, error) {
	if trustStorePath == "" {
		return &tls.Config{}, nil
	}

	caCert, err := os.ReadFile(trustStorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read trustStorePath: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("no certificates found in %s", trustStorePath)
	}

	return &tls.Config{RootCAs: caCertPool}, nil
}

// ParseCredentials reads "username:password". An empty string means no SASL.
func ParseCredentials(creds string) (*plain.Mechanism, error) {
	if creds == "" {
		return nil, nil
	}
	parts := strings.SplitN(creds, ":", 2)
	if len(parts) != 2 || parts[0] == "" {
		return nil, fmt.Errorf("kafka credentials must be username:password")
	}
	return &plain.Mechanism{Username: parts[0], Password: parts[1]}, nil
}
