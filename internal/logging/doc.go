// Package logger provides leveled, colored logging for pageseal commands.
//
// Output is formatted with semantic prefixes colored by fatih/color.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows info and debug messages
//
// Warnings and errors are always shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown on stderr
//	Logger.WarnfAlways()    // Always shown, even while a spinner owns stdout
//	Logger.Errorf()         // Always shown on stderr
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Sealing %d bytes", len(doc))
//
// Passphrases and decrypted content must never be passed to any log method.
package logger
