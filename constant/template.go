// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Script Identifiers - these constants define the Lua surface exposed to user scripts.
const (
	// ScriptExtension marks files executed through the Lua runtime instead of the word interpreter.
	ScriptExtension = ".lua"

	// ScriptStackGlobal is the global table through which Lua scripts reach the stack.
	ScriptStackGlobal = "stack"
)

// ScriptTemplate is a Go text/template for scaffolding new Lua scripts.
const ScriptTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}

-- The global {{ .Global }} table operates on the current stack:
--   {{ .Global }}.push(x)  {{ .Global }}.pop()  {{ .Global }}.peek()
--   {{ .Global }}.pick(n)  {{ .Global }}.roll(n)
--   {{ .Global }}.dup()  {{ .Global }}.drop()  {{ .Global }}.swap()  {{ .Global }}.over()
--   {{ .Global }}.rot()  {{ .Global }}.nip()  {{ .Global }}.tuck()
--   {{ .Global }}.len()  {{ .Global }}.cap()  {{ .Global }}.realloc(n)  {{ .Global }}.clear()
--   {{ .Global }}.items()  {{ .Global }}.word(name)


----- MAIN -----

{{ .Global }}.push(1)
{{ .Global }}.push(2)
{{ .Global }}.swap()

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
