// Package keyring keeps PostgreSQL connection strings in the OS keyring so
// they never need to appear on the command line or in a config file.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/weekgrid/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// account maps a connection name onto a keyring user. The empty name is the
// default connection.
func account(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return constants.DefaultKeyringUser
	}
	return constants.DefaultKeyringUser + ":" + name
}

// GetConnectionString retrieves the default connection string.
// Returns ErrNotFound if no credentials are stored.
func GetConnectionString() (string, error) {
	return Get("")
}

// SetConnectionString stores the default connection string.
func SetConnectionString(connStr string) error {
	return Set("", connStr)
}

// DeleteConnectionString removes the default connection string.
func DeleteConnectionString() error {
	return Delete("")
}

// Get retrieves a named connection string.
func Get(name string) (string, error) {
	connStr, err := keyring.Get(constants.AppName, account(name))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// Set stores a named connection string.
func Set(name, connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, account(name), connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// Delete removes a named connection string.
func Delete(name string) error {
	if err := keyring.Delete(constants.AppName, account(name)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort check that the OS keyring answers reads.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
