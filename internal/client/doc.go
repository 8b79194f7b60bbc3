// Package client assembles the DreamClick terminal client: it restores the
// persisted session, starts the background session watcher and runs the UI.
package client
