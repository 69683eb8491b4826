package event

import (
	"errors"

	"github.com/nostrust/nostrust/pkg/hex"
	"github.com/nostrust/nostrust/pkg/nostr/eventid"
	"github.com/nostrust/nostrust/pkg/nostr/keys"
	"github.com/nostrust/nostrust/pkg/nostr/kind"
	"github.com/nostrust/nostrust/pkg/nostr/signature"
	"github.com/nostrust/nostrust/pkg/nostr/tags"
	"github.com/nostrust/nostrust/pkg/nostr/timestamp"
)

// ErrHashMismatch is returned by Verify when the stored event ID does not
// equal the hash of the canonical form, meaning some field of the event
// was changed after it was signed.
var ErrHashMismatch = errors.New("event id does not match canonical form hash")

// New constructs an event of the given kind, tags and content, stamps it
// with the current wall clock second, computes the ID and signs it with
// the pair's secret key. It fails with keys.ErrNoSecretKey on a
// verify-only pair.
func New(k kind.T, tg tags.T, content string, p *keys.Pair) (ev *T, err error) {
	if tg == nil {
		tg = tags.T{}
	}
	ev = &T{
		PubKey:    p.PublicKey().Hex(),
		CreatedAt: timestamp.Now(),
		Kind:      k,
		Tags:      tg,
		Content:   content,
	}
	if err = ev.Sign(p); chk.D(err) {
		ev = nil
		return
	}
	return
}

// Sign computes the canonical hash of the event, signs it, and populates
// the id, pubkey and sig fields.
func (ev *T) Sign(p *keys.Pair) (err error) {
	ev.PubKey = p.PublicKey().Hex()
	id := ev.GetIDBytes()
	var sig *signature.T
	if sig, err = p.Sign(id); chk.D(err) {
		return
	}
	ev.ID = eventid.T(hex.Enc(id))
	ev.Sig = sig.Hex()
	return
}

// Verify checks the consistency invariant of the event: the stored ID must
// equal the hash of the canonical form, and the signature must validate
// over that hash under the stored public key.
//
// The two failure modes are deliberately distinct: ErrHashMismatch means
// the event was edited without resigning, while keys.ErrInvalidSignature
// means the signature itself is wrong. Malformed hex or key encodings
// surface as their own parse errors before verification runs. Verify never
// mutates the event and is idempotent.
func (ev *T) Verify() (err error) {

	// recompute the hash from the current field values; this catches
	// tampering with any canonical field.
	if ev.GetID() != ev.ID {
		return ErrHashMismatch
	}

	// parse the signature hex.
	var sig *signature.T
	if sig, err = signature.FromHex(ev.Sig); chk.D(err) {
		return log.E.Err("event signature is malformed: %w", err)
	}

	// the ID is the 32 byte message that was signed.
	var id []byte
	if id, err = hex.Dec(ev.ID.String()); chk.D(err) {
		return log.E.Err("event id is invalid hex: %w", err)
	}

	// parse the x-only public key.
	var pk *keys.PublicKey
	if pk, err = keys.PublicKeyFromHex(ev.PubKey); chk.D(err) {
		return log.E.Err("event has invalid pubkey '%s': %w", ev.PubKey, err)
	}

	// check the signature.
	return keys.Verify(sig, id, pk)
}
