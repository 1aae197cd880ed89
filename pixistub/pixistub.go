// Package pixistub embeds a renderless miniature of the bound library.
// Tests and the CLI load it instead of the real distribution to run
// headless and deterministic while keeping real foreign semantics.
package pixistub

import (
	_ "embed"
)

// ScriptName labels the stub in diagnostics and stack traces.
const ScriptName = "pixistub.js"

//go:embed stub.js
var source string

// Source returns the stub library script.
func Source() string {
	return source
}
