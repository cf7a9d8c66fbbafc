package elevate

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"os/exec"
	"time"
)

// CertInstalled reports whether the serving cert and key exist and the
// cert is present in the system trust anchors.
func CertInstalled(certFile, keyFile, trustFile string) bool {
	for _, p := range []string{certFile, keyFile, trustFile} {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}

// InstallCert makes HTTPS serving work: it mints a self-signed localhost
// certificate if one is missing, copies it into the system trust anchor
// location, and refreshes the trust store. The copy requires elevation.
func InstallCert(certFile, keyFile, trustFile string) error {
	if _, err := os.Stat(certFile); os.IsNotExist(err) {
		if err := generateSelfSigned(certFile, keyFile); err != nil {
			return err
		}
	}

	certPEM, err := os.ReadFile(certFile)
	if err != nil {
		return fmt.Errorf("read serving cert: %w", err)
	}
	if err := os.WriteFile(trustFile, certPEM, 0644); err != nil {
		return fmt.Errorf("install trust anchor: %w", err)
	}

	// Trust store refresh is distro-specific; a missing tool is not
	// fatal since the anchor file itself is in place.
	if out, err := exec.Command("update-ca-certificates").CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: trust store refresh failed: %v: %s\n", err, out)
	}
	return nil
}

func generateSelfSigned(certFile, keyFile string) error {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return fmt.Errorf("generate serial: %w", err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			CommonName:   "localhost",
			Organization: []string{"funcbase development"},
		},
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.AddDate(2, 0, 0),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(certFile, certPEM, 0644); err != nil {
		return fmt.Errorf("write cert: %w", err)
	}

	keyDER, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return fmt.Errorf("encode key: %w", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	if err := os.WriteFile(keyFile, keyPEM, 0600); err != nil {
		return fmt.Errorf("write key: %w", err)
	}

	return nil
}
