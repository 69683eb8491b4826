package bech32encoding

import (
	"unicode/utf8"

	"github.com/nostrust/nostrust/pkg/hex"
	"github.com/nostrust/nostrust/pkg/nostr/bech32encoding/tlv"
	"github.com/nostrust/nostrust/pkg/nostr/eventid"
	"github.com/nostrust/nostrust/pkg/nostr/keys"
	"github.com/nostrust/nostrust/pkg/nostr/pointers"
)

// EncodeEvent renders an event pointer as a nevent identifier. The special
// entry carries the UTF-8 bytes of the event ID text, and each relay URL
// follows as its own entry in order.
func EncodeEvent(ep *pointers.Event) (s string, err error) {
	w := &tlv.Writer{}
	if err = w.WriteEntry(tlv.Special, []byte(ep.ID.String())); chk.D(err) {
		return
	}
	for _, r := range ep.Relays {
		if err = w.WriteEntry(tlv.Relay, []byte(r)); chk.D(err) {
			return
		}
	}
	return Encode(NeventHRP, w.Bytes())
}

// DecodeEvent unpacks a nevent identifier back to an event pointer. Every
// entry must carry a known type byte and valid UTF-8 text; relay order is
// preserved.
func DecodeEvent(s string) (ep *pointers.Event, err error) {
	var data []byte
	if data, err = Decode(NeventHRP, s); chk.D(err) {
		return
	}
	ep = &pointers.Event{}
	r := tlv.NewReader(data)
	for !r.Done() {
		var typ byte
		var v []byte
		if typ, v, err = r.ReadEntry(); chk.D(err) {
			return nil, err
		}
		switch typ {
		case tlv.Special:
			if !utf8.Valid(v) {
				return nil, log.E.Err("nevent id entry is not valid UTF-8")
			}
			ep.ID = eventid.T(v)
		case tlv.Relay:
			if !utf8.Valid(v) {
				return nil, log.E.Err("nevent relay entry is not valid UTF-8")
			}
			ep.Relays = append(ep.Relays, string(v))
		default:
			return nil, tlv.InvalidTypeError(typ)
		}
	}
	return
}

// EncodeProfile renders a profile pointer as an nprofile identifier. The
// special entry carries the raw 32 byte public key; an empty PublicKey
// encodes as 32 zero bytes so the entry layout stays fixed.
func EncodeProfile(pp *pointers.Profile) (s string, err error) {
	pk := make([]byte, keys.KeyLen)
	if pp.PublicKey != "" {
		var b []byte
		if b, err = hex.Dec(pp.PublicKey); chk.D(err) {
			return "", log.E.Err("invalid profile pubkey hex '%s': %w",
				pp.PublicKey, err)
		}
		if len(b) != keys.KeyLen {
			return "", tlv.InvalidLengthError{Want: keys.KeyLen, Got: len(b)}
		}
		pk = b
	}
	w := &tlv.Writer{}
	if err = w.WriteEntry(tlv.Special, pk); chk.D(err) {
		return
	}
	for _, r := range pp.Relays {
		if err = w.WriteEntry(tlv.Relay, []byte(r)); chk.D(err) {
			return
		}
	}
	return Encode(NprofileHRP, w.Bytes())
}

// DecodeProfile unpacks an nprofile identifier back to a profile pointer.
// The special entry must be exactly 32 bytes; relay entries must be valid
// UTF-8 and keep their order.
func DecodeProfile(s string) (pp *pointers.Profile, err error) {
	var data []byte
	if data, err = Decode(NprofileHRP, s); chk.D(err) {
		return
	}
	pp = &pointers.Profile{}
	r := tlv.NewReader(data)
	for !r.Done() {
		var typ byte
		var v []byte
		if typ, v, err = r.ReadEntry(); chk.D(err) {
			return nil, err
		}
		switch typ {
		case tlv.Special:
			if len(v) != keys.KeyLen {
				return nil, tlv.InvalidLengthError{
					Want: keys.KeyLen, Got: len(v),
				}
			}
			pp.PublicKey = hex.Enc(v)
		case tlv.Relay:
			if !utf8.Valid(v) {
				return nil, log.E.Err("nprofile relay entry is not valid UTF-8")
			}
			pp.Relays = append(pp.Relays, string(v))
		default:
			return nil, tlv.InvalidTypeError(typ)
		}
	}
	return
}
