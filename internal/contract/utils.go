package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Rating label constants.
const (
	EliteValue      = "Elite"      // World class
	StrongValue     = "Strong"     // Above average
	DecentValue     = "Decent"     // Squad player
	DevelopingValue = "Developing" // Below average or unproven
)

// Color variables for console output.
var (
	EliteColor      = color.New(color.FgGreen, color.Bold) // eliteColor represents the top band.
	StrongColor     = color.New(color.FgCyan, color.Bold)  // strongColor represents a clearly good rating.
	DecentColor     = color.New(color.FgYellow)            // decentColor represents a serviceable rating, not bold.
	DevelopingColor = color.New(color.FgWhite)             // developingColor represents a low or unproven rating.
)

// GetPlainLabel returns a plain text label for a skill rating on the
// nominal 1-20 scale. This is the core logic used for CSV, JSON, and
// table printing.
func GetPlainLabel(rating float64) string {
	switch {
	case rating >= 16:
		return EliteValue
	case rating >= 12:
		return StrongValue
	case rating >= 8:
		return DecentValue
	default:
		return DevelopingValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(rating float64) string {
	text := GetPlainLabel(rating)

	switch text {
	case EliteValue:
		return EliteColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case DecentValue:
		return DecentColor.Sprint(text)
	default: // "Developing"
		return DevelopingColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It writes to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".scout_cache.db"
	}
	return filepath.Join(homeDir, ".scout_cache.db")
}

// TruncateName truncates a display name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to ensure there's space for both the "..." and at
// least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
