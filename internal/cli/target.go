package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/weekgrid/internal/constants"
	"github.com/julianstephens/weekgrid/internal/keyring"
	"github.com/julianstephens/weekgrid/internal/logger"
	"github.com/julianstephens/weekgrid/internal/storage/postgres"
)

// ErrCredentialsOnCommandLine is returned when --db carries a password.
var ErrCredentialsOnCommandLine = errors.New("PostgreSQL connection strings with embedded credentials are not allowed on the command line")

// ResolveTarget picks the database to open. Order: the --db flag, a named
// keyring connection, the connection environment variable, the default
// keyring connection, then the default sqlite path.
func ResolveTarget(db, connection string) (string, error) {
	if db != "" {
		if postgres.IsConnString(db) {
			if _, err := postgres.ValidateConnString(db); err != nil {
				if errors.Is(err, postgres.ErrEmbeddedCredentials) {
					return "", ErrCredentialsOnCommandLine
				}
				return "", err
			}
		}
		return db, nil
	}

	if connection != "" {
		connStr, err := keyring.Get(connection)
		if err != nil {
			return "", fmt.Errorf("failed to read connection %q from keyring: %w", connection, err)
		}
		return connStr, nil
	}

	if env := os.Getenv(constants.ConnectionEnvVar); env != "" {
		return env, nil
	}

	connStr, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		return connStr, nil
	case errors.Is(err, keyring.ErrNotFound):
	default:
		logger.Debug("Keyring lookup skipped", "error", err)
	}
	return constants.DefaultConfigPath, nil
}
