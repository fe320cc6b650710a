// Package config provides run options for tty-fifteen.
//
// The config package handles:
//   - Grid dimensions and their defaults (4x4)
//   - Range validation with diagnostics that name the offending option
//   - Logger construction for the selected front end
//
// Dimensions:
//
// Lines is the number of grid lines and Rows the number of tiles on each
// line. Both must lie in [MinDimension, MaxDimension]; anything else is
// reported as a *DimensionError before any game state is created.
//
// Usage:
//
//	opts := config.Default()
//	opts.Lines = 3
//	if err := opts.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
//	logger, closeLog, err := config.NewLogger(opts, io.Discard)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer closeLog()
//
// Logging:
//
// The terminal front end owns stdout, so its logs go to the file named by
// LogFile or are discarded. The MCP front end owns stdout for the protocol
// and logs to stderr instead.
package config
