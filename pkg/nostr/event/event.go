// Package event implements the primary datatype of nostr: the signed,
// content addressed event of NIP-01, with its canonical serialization, ID
// hashing, signing and verification.
package event

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/nostrust/nostrust/pkg/nostr/eventid"
	"github.com/nostrust/nostrust/pkg/nostr/kind"
	"github.com/nostrust/nostrust/pkg/nostr/tags"
	"github.com/nostrust/nostrust/pkg/nostr/timestamp"
	"github.com/nostrust/nostrust/pkg/nostr/wire/text"
	"github.com/nostrust/nostrust/pkg/slog"
)

var log, chk = slog.New(os.Stderr)

// T is the form of the structure that defines the JSON string based format
// of the nostr event.
type T struct {

	// ID is the SHA256 hash of the canonical encoding of the event.
	ID eventid.T `json:"id"`

	// PubKey is the public key of the event creator in hexadecimal, x-only
	// format.
	PubKey string `json:"pubkey"`

	// CreatedAt is the UNIX timestamp of the event according to the event
	// creator (never trust a timestamp!)
	CreatedAt timestamp.T `json:"created_at"`

	// Kind is the nostr protocol code for the type of event. See kind.T.
	Kind kind.T `json:"kind"`

	// Tags are a list of tags, which are a list of strings, the first
	// being a one character discriminator ("e" event, "p" profile).
	Tags tags.T `json:"tags"`

	// Content is an arbitrary string, usually conforming to a
	// specification relating to the Kind and the Tags.
	Content string `json:"content"`

	// Sig is the signature on the ID hash that validates as coming from
	// the PubKey.
	Sig string `json:"sig"`
}

// MarshalJSON emits the event with the conventional field ordering and the
// same string escaping as the canonical form. Optional extension fields
// (such as "ots") are accepted on read but never written.
func (ev *T) MarshalJSON() (b []byte, err error) {
	return ev.Serialize(), nil
}

// Serialize renders the event as its wire format JSON object.
func (ev *T) Serialize() (dst []byte) {
	dst = append(dst, `{"id":`...)
	dst = text.EscapeString(dst, ev.ID.String())
	dst = append(dst, `,"pubkey":`...)
	dst = text.EscapeString(dst, ev.PubKey)
	dst = append(dst, `,"created_at":`...)
	dst = strconv.AppendUint(dst, ev.CreatedAt.U64(), 10)
	dst = append(dst, `,"kind":`...)
	dst = strconv.AppendUint(dst, uint64(ev.Kind), 10)
	dst = append(dst, `,"tags":`...)
	dst = ev.Tags.MarshalTo(dst)
	dst = append(dst, `,"content":`...)
	dst = text.EscapeString(dst, ev.Content)
	dst = append(dst, `,"sig":`...)
	dst = text.EscapeString(dst, ev.Sig)
	dst = append(dst, '}')
	return
}

func (ev *T) String() string { return string(ev.Serialize()) }

// FromJSON decodes an event from its wire format. The id and sig fields
// are carried as-is and stay unverified until Verify is called; unknown
// fields are ignored.
func FromJSON(b []byte) (ev *T, err error) {
	ev = &T{}
	if err = json.Unmarshal(b, ev); chk.D(err) {
		ev = nil
		return
	}
	if ev.Tags == nil {
		ev.Tags = tags.T{}
	}
	return
}
