// Package cmdcontext provides a context for the commands.
package cmdcontext

// CmdCtx is the context for commands of all groups.
type CmdCtx struct {
	// Cli holds global flags and the configuration location.
	Cli CliCtx
}

// CliCtx holds global flags passed on webskel start and the resolved
// configuration location.
type CliCtx struct {
	// Verbose enables debug log output.
	Verbose bool
	// ConfigPath is the configuration file path specified by the user.
	ConfigPath string
	// ConfigDir is the directory containing the configuration file.
	ConfigDir string
}
