package event

import (
	"strconv"

	"github.com/minio/sha256-simd"
	"github.com/nostrust/nostrust/pkg/hex"
	"github.com/nostrust/nostrust/pkg/nostr/eventid"
	"github.com/nostrust/nostrust/pkg/nostr/wire/text"
)

// Hash returns the SHA256 digest of the input.
func Hash(in []byte) (out []byte) {
	h := sha256.Sum256(in)
	return h[:]
}

// ToCanonical appends the canonical hash preimage of the event to dst:
//
//	[0,pubkey,created_at,kind,tags,content]
//
// Field order and list order are fixed by position. The byte output must
// not deviate from the compact serializer form in any way or the ID hash
// changes, which is the point: the ID binds every one of these fields.
func (ev *T) ToCanonical(dst []byte) []byte {
	dst = append(dst, '[', '0', ',')
	dst = text.EscapeString(dst, ev.PubKey)
	dst = append(dst, ',')
	dst = strconv.AppendUint(dst, ev.CreatedAt.U64(), 10)
	dst = append(dst, ',')
	dst = strconv.AppendUint(dst, uint64(ev.Kind), 10)
	dst = append(dst, ',')
	dst = ev.Tags.MarshalTo(dst)
	dst = append(dst, ',')
	dst = text.EscapeString(dst, ev.Content)
	dst = append(dst, ']')
	return dst
}

// GetIDBytes returns the raw SHA256 hash of the canonical form of the
// event.
func (ev *T) GetIDBytes() []byte {
	return Hash(ev.ToCanonical(nil))
}

// GetID serializes and returns the event ID as a hexadecimal string.
func (ev *T) GetID() eventid.T {
	return eventid.T(hex.Enc(ev.GetIDBytes()))
}
