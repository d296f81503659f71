package constants

const (
	AppName            = "weekgrid"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/weekgrid/weekgrid.db"
	ConnectionEnvVar   = "WEEKGRID_DB_CONNECTION"
	PostgresConfigPath = "postgresql" // GetConfigPath of a postgres store
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is how spreadsheet exports write day headers
	DateTimeFormat = "2006-01-02 15:04:05"

	// USDateFormat is the month-first date used by the US export
	USDateFormat = "1/2/2006"

	// WeekKeyFormat is the canonical printf layout of a week key (YYYY-Wnn)
	WeekKeyFormat = "%04d-W%02d"

	// TimeColumnMarker is the first cell of every grid header row
	TimeColumnMarker = "Time"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "weekgrid-"
	BackupFileSuffix = ".db"

	// Log constants
	LogDirName  = "logs"
	LogFileName = "weekgrid.log"
)
