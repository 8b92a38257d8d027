// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// A run loads a scene into a fresh graph controller, replays the scene's drag
// scripts against it and prints a report of the resulting canvas state.
package app
