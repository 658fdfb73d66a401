package keys

import (
	"bytes"
	"testing"

	"mayo-go/params"
)

func TestCompactPublicKeyRoundTrip(t *testing.T) {
	v, err := params.New(params.MAYO1)
	if err != nil {
		t.Fatal(err)
	}
	seedPK := bytes.Repeat([]byte{0x11}, params.PKSeedBytes)
	p3 := bytes.Repeat([]byte{0x22}, v.P3Bytes())

	cpk, err := NewCompactPublicKey(v, seedPK, p3)
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseCompactPublicKey(v, cpk.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(parsed.SeedPK(), seedPK) {
		t.Fatal("seed_pk mismatch after round trip")
	}
	if !bytes.Equal(parsed.EncodedP3(), p3) {
		t.Fatal("encoded P3 mismatch after round trip")
	}
}

func TestExpandedSecretKeyFieldOffsets(t *testing.T) {
	v, err := params.New(params.MAYO1)
	if err != nil {
		t.Fatal(err)
	}
	seedSK := bytes.Repeat([]byte{0x01}, params.SKSeedBytes)
	o := bytes.Repeat([]byte{0x02}, v.OBytes())
	p1 := bytes.Repeat([]byte{0x03}, v.P1Bytes())
	l := bytes.Repeat([]byte{0x04}, v.LBytes())

	esk, err := NewExpandedSecretKey(v, seedSK, o, p1, l)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(esk.SeedSK(), seedSK) || !bytes.Equal(esk.EncodedO(), o) ||
		!bytes.Equal(esk.EncodedP1(), p1) || !bytes.Equal(esk.EncodedL(), l) {
		t.Fatal("field extraction mismatch")
	}
	if len(esk.Bytes()) != v.ESKBytes() {
		t.Fatalf("total length %d want %d", len(esk.Bytes()), v.ESKBytes())
	}
}

func TestSignatureCrossVariantRejected(t *testing.T) {
	v1, _ := params.New(params.MAYO1)
	v2, _ := params.New(params.MAYO2)

	sBytes1 := (v1.N*v1.K + 1) / 2
	sig, err := NewSignature(v1, make([]byte, sBytes1), make([]byte, v1.SaltBytes))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseSignature(v2, sig.Bytes()); err == nil {
		t.Fatal("expected a MAYO-1 signature to be rejected under MAYO-2's byte layout")
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	v, _ := params.New(params.MAYO1)
	if _, err := ParseCompactSecretKey(v, make([]byte, v.CSKBytes()-1)); err == nil {
		t.Fatal("expected decode error for short csk")
	}
	if _, err := ParseExpandedPublicKey(v, make([]byte, v.EPKBytes()+1)); err == nil {
		t.Fatal("expected decode error for long epk")
	}
}
