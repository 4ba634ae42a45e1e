// Package cli implements the interactive red-social client: a REPL over
// the session, profile, feed and user services. All remote work is
// sequential: one command runs one request at a time, so there is never
// more than one outstanding call.
package cli
