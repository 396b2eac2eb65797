package service

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"os"
	"path"
	"time"
)

func LoadCertificate(base string) (*tls.Certificate, error) {
	crt, err := os.ReadFile(path.Join(base, "tls.crt"))
	if err != nil {
		return nil, err
	}
	key, err := os.ReadFile(path.Join(base, "tls.key"))
	if err != nil {
		return nil, err
	}
	cert, err := tls.X509KeyPair(crt, key)
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// NewSelfSignedCertificate generates a throwaway RSA certificate for the
// given common name and subject alternative names. Used for the gRPC
// controller/router TLS listeners and the internal OIDC issuer, none of
// which need a CA-issued certificate since their only clients are
// exporters and clients that already trust the controller out of band.
func NewSelfSignedCertificate(cn string, dnsnames []string, ipaddresses []net.IP) (*tls.Certificate, error) {
	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: cn},
		Issuer:                pkix.Name{CommonName: cn},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		BasicConstraintsValid: true,
		DNSNames:              dnsnames,
		IPAddresses:           ipaddresses,
	}

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}

	certificate, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return nil, err
	}

	return &tls.Certificate{
		Certificate: [][]byte{certificate},
		PrivateKey:  priv,
	}, nil
}
