// Package pointers defines the transient views encoded into and decoded
// from the nevent and nprofile bech32 identifiers.
package pointers

import (
	"github.com/nostrust/nostrust/pkg/nostr/eventid"
)

// Profile points at a user: an x-only public key in hexadecimal, possibly
// empty when the source identifier carried only the 32 zero byte
// placeholder, and the relays the user can be found on, in encoding order.
type Profile struct {
	PublicKey string   `json:"pubkey"`
	Relays    []string `json:"relays,omitempty"`
}

// Event points at an event by ID together with the relays it can be
// fetched from, in encoding order.
type Event struct {
	ID     eventid.T `json:"id"`
	Relays []string  `json:"relays,omitempty"`
}
