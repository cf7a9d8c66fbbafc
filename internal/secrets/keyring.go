package secrets

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/funcbase/cli/internal/domain"
)

// keyringService is the service name used in the keyring.
// Can be overridden for testing to avoid interfering with the real one.
var keyringService = domain.AppName

// ErrSecretNotFound is returned when a secret is not in the keyring.
var ErrSecretNotFound = errors.New("secret not found in keyring")

func setKeyringServiceForTesting(testServiceName string) func() {
	originalService := keyringService
	keyringService = testServiceName
	return func() {
		keyringService = originalService
	}
}

// GetSecret retrieves a protected value from the keyring.
func GetSecret(name string) (string, error) {
	value, err := keyring.Get(keyringService, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrSecretNotFound
		}
		return "", fmt.Errorf("get secret from keyring: %w", err)
	}
	return value, nil
}

// SetSecret stores a protected value in the keyring.
func SetSecret(name, value string) error {
	if err := keyring.Set(keyringService, name, value); err != nil {
		return fmt.Errorf("set secret in keyring: %w", err)
	}
	return nil
}

// DeleteSecret removes a protected value from the keyring.
func DeleteSecret(name string) error {
	if err := keyring.Delete(keyringService, name); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrSecretNotFound
		}
		return fmt.Errorf("delete secret from keyring: %w", err)
	}
	return nil
}
