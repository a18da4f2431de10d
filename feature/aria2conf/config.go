package aria2conf

// Config holds configuration for the aria2 configuration file target.
type Config struct {
	// Path is the location of the aria2 configuration file.
	Path string `mapstructure:"path" default:"/opt/aria2/aria2.conf"`
	// BackupEnabled controls whether the file is copied aside before rewriting.
	BackupEnabled bool `mapstructure:"backup_enabled" default:"true"`
	// BackupSuffix is appended to the path to form the backup file name.
	BackupSuffix string `mapstructure:"backup_suffix" default:".bak"`
}
