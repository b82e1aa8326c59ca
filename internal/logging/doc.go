// Package logging provides the dirtally.Logger implementations used by
// the command line.
//
//   - ConsoleLogger: prefixed lines on stderr (or any io.Writer), with
//     verbose output gated by --verbose
//   - NullLogger: discards all messages
//
// The inventory engine itself never logs. Logging happens at the command
// layer around it.
package logging
