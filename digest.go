package hxd

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

type MD int

const (
	SHA3_224 MD = 1 + iota
	SHA3_256
	SHA3_384
	SHA3_512
	SHA_256
	SHA_512
	BLAKE2b_256
	BLAKE2b_512
)

const (
	DefaultMD = SHA3_256
	MDDesc    = "message digest"
)

var MDNames = map[MD]string{
	SHA3_224:    "SHA3-224",
	SHA3_256:    "SHA3-256",
	SHA3_384:    "SHA3-384",
	SHA3_512:    "SHA3-512",
	SHA_256:     "SHA-256",
	SHA_512:     "SHA-512",
	BLAKE2b_256: "BLAKE2b-256",
	BLAKE2b_512: "BLAKE2b-512",
}

var mds = [...]MD{
	SHA3_224,
	SHA3_256,
	SHA3_384,
	SHA3_512,
	SHA_256,
	SHA_512,
	BLAKE2b_256,
	BLAKE2b_512,
}

var MDString = getOptionString(mds[:], MDNames)

func (md MD) String() string {
	if name, ok := MDNames[md]; ok {
		return name
	}
	return fmt.Sprintf("MD(%d)", int(md))
}

func getOptionString(values []MD, names map[MD]string) string {
	d := make([]string, len(values))
	for i, v := range values {
		d[i] = fmt.Sprintf("%d:%s", int(v), names[v])
	}
	return strings.Join(d, ", ")
}

func ValidateMD(md MD) error {
	for _, m := range mds {
		if m == md {
			return nil
		}
	}
	return errInvMD
}

func getMD(md MD) (hash.Hash, error) {
	switch md {
	case SHA3_224:
		return sha3.New224(), nil
	case SHA3_256:
		return sha3.New256(), nil
	case SHA3_384:
		return sha3.New384(), nil
	case SHA3_512:
		return sha3.New512(), nil
	case SHA_256:
		return sha256.New(), nil
	case SHA_512:
		return sha512.New(), nil
	case BLAKE2b_256:
		return blake2b.New256(nil)
	case BLAKE2b_512:
		return blake2b.New512(nil)
	}
	return nil, errInvMD
}

// PrintFunc receives the summary of a file once it has been dumped and closed.
type PrintFunc func(name string, size int64, md MD, sum []byte) error

func NewDefaultPrintFunc(w io.Writer) PrintFunc {
	return func(name string, size int64, md MD, sum []byte) error {
		_, err := fmt.Fprintf(w, "%-12s%s\n%-12s%d\n%-12s%x\n", "NAME", name, "SIZE", size, md, sum)
		return err
	}
}
