// Package action models the ten stack operations a tunnel-network node may
// perform on a packet carrying a stack of IPv4/IPv6 encapsulation symbols.
//
// The alphabet is closed: a StackSymbol is one of {4, 6}, and an Action is
// one of transmit(4), transmit(6), four push variants, and four pop
// variants. Actions carry a canonical index 0..9 used for compact bitmask
// storage (Set) and for stable textual dumps.
package action
