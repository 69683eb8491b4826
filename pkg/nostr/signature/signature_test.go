package signature

import (
	"strings"
	"testing"
)

const sigHex = "e235a72aaaa17cb4101d9b67d196a2aa0618cfea19f7a4884a2aea138585c749" +
	"8b99697bf9b4d5fff4a15883062fd0b2408f44250fccf73cd76b6ce3ce1ac420"

func TestFromHexRoundTrip(t *testing.T) {
	var err error
	var sig *T
	if sig, err = FromHex(sigHex); err != nil {
		t.Fatalf("error parsing signature: '%s'", err)
	}
	if got := sig.Hex(); got != sigHex {
		t.Fatalf("hex round trip mismatch: got %s want %s", got, sigHex)
	}
	if len(sig.Serialize()) != 64 {
		t.Fatalf("serialized length %d, expect 64", len(sig.Serialize()))
	}
}

func TestFromHexRejectsBadInput(t *testing.T) {
	if _, err := FromHex(sigHex[:126]); err == nil {
		t.Fatal("expected error for short hex")
	}
	if _, err := FromHex(sigHex + "00"); err == nil {
		t.Fatal("expected error for long hex")
	}
	if _, err := FromHex(strings.Replace(sigHex, "e", "x", 1)); err == nil {
		t.Fatal("expected error for invalid hex digit")
	}
}
