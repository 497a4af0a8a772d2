// Package mass lifts the solo combinators onto channels so a timeout can be
// started without blocking the caller. Each call delivers at most one value
// and then closes its channel.
package mass
