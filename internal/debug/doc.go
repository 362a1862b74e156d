// Package debug provides debug logging functionality for tourguide.
//
// When enabled via the --debug flag, it writes section renders, key
// handling and external opener results to a log file, since the
// terminal itself is owned by the UI.
package debug
