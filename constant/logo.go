package constant

import _ "embed"

// Logo is the banner shown above the root command help.
//
//go:embed logo.txt
var Logo string

// Tagline is the one-line description of stackr.
const Tagline = "A bounded stack calculator with a Forth-like vocabulary"
