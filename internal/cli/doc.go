// Package cli defines the Cobra command for read-lnk. The command validates
// its single path argument, loads settings, and hands the file to a
// shortcut.Decoder; rendering lives in the report package. This package only
// maps outcomes to output streams and exit codes.
package cli
