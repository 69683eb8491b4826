// Package kind defines the event type code of the nostr protocol.
package kind

// T is the nostr protocol code for the type of event. It is a 32 bit
// unsigned integer on the wire; event kinds above the 16 bit range are in
// active use by application-defined event types.
type T uint32

func (k T) ToInt() int       { return int(k) }
func (k T) ToUint32() uint32 { return uint32(k) }

// The common kinds, put in a separate package so call sites read as
// `kind.TextNote` rather than repeating the protocol name in the constant.
const (
	// ProfileMetadata is an event type that stores user profile data, pet
	// names, bio, lightning address, etc.
	ProfileMetadata T = 0
	// SetMetadata is a synonym for ProfileMetadata.
	SetMetadata T = 0
	// TextNote is a standard short text note of plain text a la twitter.
	TextNote T = 1
	// RecommendRelay is an event advertising a relay URL to followers.
	RecommendRelay T = 2
	// FollowList is an event containing the list of pubkeys a user follows.
	FollowList T = 3
	// EncryptedDirectMessage is a direct message with AES-256-CBC encrypted
	// content.
	EncryptedDirectMessage T = 4
	// Deletion requests removal of prior events by the same author.
	Deletion T = 5
	// Repost rebroadcasts another event.
	Repost T = 6
	// Reaction is a like/dislike style response to another event.
	Reaction T = 7
)
