// Package cli provides the interactive NoteKeeper command-line client.
//
// It wires configuration, the local SQLite store, the gRPC remote client,
// the connectivity monitor and the sync engine into an interactive REPL
// that keeps working when the server is unreachable. Typical flow: prompt
// for credentials, start the background connectivity watcher, and execute
// user commands against the local store while the engine mirrors changes
// to the server whenever it can.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the sync package for details.
package cli
