// Package geocode turns user coordinates into display addresses.
//
// OpenCage is the reverse-geocoding backend. Resolver puts a coordinate-keyed
// LRU cache with TTL in front of it, collapses concurrent lookups of the same
// point, and enriches whole pages of users with a bounded number of workers.
// Failed lookups are logged, yield an empty address and are never cached.
package geocode
