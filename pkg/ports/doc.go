// Package ports defines the driven-side interfaces of hedge. Adapters
// (memory, redis) implement them; the contract helpers verify compliance.
package ports
