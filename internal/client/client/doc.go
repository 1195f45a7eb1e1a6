// Package client contains the transport and local-storage building blocks of
// the emergency help client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     backend REST surface: auth (login/register) and the user directory
//     (list, nearby, get, create, update, delete).
//  2. A concrete net/http implementation (see HTTPClient). An outgoing-request
//     hook (authTransport) attaches the current bearer token and a request ID.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Any non-2xx response becomes an
// *APIError carrying the status and the backend's "message" field; 401 and
// 403 also match ErrUnauthorized. 4xx and 5xx are otherwise not
// distinguished. Match with errors.Is / errors.As.
//
// All operations accept context.Context and honor cancellation.
package client
