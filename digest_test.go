package hxd

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateMD(t *testing.T) {
	for _, md := range mds {
		if err := ValidateMD(md); err != nil {
			t.Errorf("%v: %v", md, err)
		}
	}
	for _, md := range []MD{0, -1, BLAKE2b_512 + 1} {
		if err := ValidateMD(md); err != errInvMD {
			t.Errorf("%d: got %v, want %v", int(md), err, errInvMD)
		}
	}
}

func TestGetMD(t *testing.T) {
	var tests = []struct {
		md   MD
		size int
	}{
		{SHA3_224, 28},
		{SHA3_256, 32},
		{SHA3_384, 48},
		{SHA3_512, 64},
		{SHA_256, 32},
		{SHA_512, 64},
		{BLAKE2b_256, 32},
		{BLAKE2b_512, 64},
	}
	for _, tt := range tests {
		t.Run(tt.md.String(), func(t *testing.T) {
			h, err := getMD(tt.md)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(h.Sum(nil)); got != tt.size {
				t.Errorf("got %d byte sum, want %d", got, tt.size)
			}
		})
	}
}

func TestMDString(t *testing.T) {
	if !strings.HasPrefix(MDString, "1:SHA3-224, 2:SHA3-256, ") {
		t.Errorf("got %q", MDString)
	}
	if got := MD(42).String(); got != "MD(42)" {
		t.Errorf("got %q", got)
	}
}

func TestNewDefaultPrintFunc(t *testing.T) {
	var out bytes.Buffer
	err := NewDefaultPrintFunc(&out)("a.bin", 3, SHA_256, []byte{0xde, 0xad})
	if err != nil {
		t.Fatal(err)
	}
	want := "NAME        a.bin\nSIZE        3\nSHA-256     dead\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
