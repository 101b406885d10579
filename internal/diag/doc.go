// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: Severity, a compact Code with a stable
// string form (LEXnnnn, SYNnnnn, IOnnnn), a short Message, the Primary span
// and optional Notes. Notes carry extra context such as the parser's
// suggestion for the expected token.
//
// Phases emit through a Reporter so that storage stays decoupled from
// emission. BagReporter collects into a Bag which supports sorting,
// deduplication and bounded capacity. Rendering lives in internal/diagfmt.
package diag
