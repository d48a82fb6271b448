package config

import "github.com/crazywolf132/statscmd/internal/builder"

// Setting keys understood by statscmd.
const (
	KeyPython        = "python"
	KeyStatsScript   = "script.stats"
	KeyMonthlyScript = "script.monthly"
	KeyCopy          = "copy"
	KeyToken         = "github.token"
)

// KnownKey documents a setting for `statscmd config list`.
type KnownKey struct {
	Key         string
	Description string
	Default     string
}

var KnownKeys = []KnownKey{
	{Key: KeyPython, Description: "Interpreter placed before the script", Default: builder.DefaultInterpreter},
	{Key: KeyStatsScript, Description: "Script for repos/org/rank/contributors", Default: builder.DefaultStatsScript},
	{Key: KeyMonthlyScript, Description: "Script for the monthly analysis", Default: builder.DefaultMonthlyScript},
	{Key: KeyCopy, Description: "Copy generated commands to the clipboard", Default: "true"},
	{Key: KeyToken, Description: "Token prefilled in interactive forms (stored encrypted)"},
}

// IsKnown reports whether key is one of KnownKeys.
func IsKnown(key string) bool {
	for _, k := range KnownKeys {
		if k.Key == key {
			return true
		}
	}
	return false
}
