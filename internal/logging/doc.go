// Package logger provides simple leveled logging for notevault commands.
//
// Output is gated by two flags that map directly to the CLI's --verbose
// and --debug options:
//
//	Logger.Infof()       // Shown with --verbose
//	Logger.Debugf()      // Shown only with --debug
//	Logger.Warnf()       // Shown with --verbose or --debug
//	Logger.WarnfUser()   // User-facing warnings (always shown)
//	Logger.Errorf()      // Always shown
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Decrypted %d notes", count)
//
// Commands typically create a logger in their PersistentPreRun and
// pass it to internal functions.
package logger
