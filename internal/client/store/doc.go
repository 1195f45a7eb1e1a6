// Package store holds client state behind pure reducers.
//
// State changes only through Dispatch. Each reducer runs to completion under
// the store's lock, so a reader never observes a half-applied action.
// Subscribers are called after the lock is released, in subscription order,
// with the state produced by the action.
package store
