// Package cli provides the interactive emergency help command-line client.
//
// App renders the auth and directory stores and dispatches user commands to
// the application services. Typical flow: restore the persisted session, land
// in the view for the session's role, then execute commands from the REPL.
//
// Key features:
//   - Register / Login / Logout with role-based landing view
//   - Nearby users around the shared (or default) position
//   - Directory management for admins: list, show, add, edit, delete
//   - Addresses resolved per row through the geocode cache
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
