// Package host connects built advancements to a running server.
//
// The server side is abstracted by Server and Progress. An Adapter wraps one
// advancement and performs the operations a plugin needs:
//
//   - Add/Remove: register or unregister the rendered document
//   - Grant/Revoke: complete or reset the advancement for players
//   - Show: add and grant now, revoke and remove after a delay
//   - Save/Delete: write or remove data/advancements/<ns>/<key>.json under a
//     world directory
//
// Failures are logged with slog and returned wrapped.
package host
