// Package services contains the application services of the emergency help
// client: session management (AuthService) and the asynchronous directory
// operations (DirectoryService) that drive the stores in package store.
package services
