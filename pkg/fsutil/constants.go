package fsutil

// File and directory permission constants.
const (
	// FileModeDefault is used for regular files such as the config file.
	FileModeDefault = 0o644 // -rw-r--r--
	// DirModeDefault is used for directories created on demand.
	DirModeDefault = 0o755 // drwxr-xr-x
)
