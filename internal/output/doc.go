// Package output provides styled terminal output for aznet.
//
// It wraps charmbracelet/log for structured logging and lipgloss for
// styling. All user-facing output goes through this package rather than
// fmt.Println: that keeps the --json and NO_COLOR behavior in one place.
package output
