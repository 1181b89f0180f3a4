// pkg/archive/hash.go
package archive

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"
)

const hashPrefix = "sha256:"

// narHashLen is the nix base32 length of a sha256 digest
const narHashLen = (sha256.Size*8-1)/5 + 1

// Nix uses a special base32 alphabet (without E, O, U, T)
// See: https://github.com/kolloch/nix-base32
const nixBase32Alphabet = "0123456789abcdfghijklmnpqrsvwxyz"

// NarHash returns the sha256 of the tree's NAR serialization in the form
// "sha256:<nix base32>". Two trees with the same hash have identical
// contents, names and executable bits.
func NarHash(root string) (string, error) {
	h := sha256.New()
	if err := writeNar(h, root); err != nil {
		return "", err
	}
	return hashPrefix + toNixBase32(h.Sum(nil)), nil
}

// VerifyNarHash compares the tree at root with an expected NarHash value.
func VerifyNarHash(root, expected string) error {
	want, err := parseNarHash(expected)
	if err != nil {
		return err
	}

	h := sha256.New()
	if err := writeNar(h, root); err != nil {
		return err
	}
	if got := h.Sum(nil); !bytes.Equal(got, want) {
		return fmt.Errorf("%w: %s has %s%s, want %s", ErrHashMismatch, root, hashPrefix, toNixBase32(got), expected)
	}
	return nil
}

func parseNarHash(s string) ([]byte, error) {
	if !strings.HasPrefix(s, hashPrefix) {
		return nil, fmt.Errorf("nar hash %q: missing %q prefix", s, hashPrefix)
	}
	enc := strings.TrimPrefix(s, hashPrefix)
	if len(enc) != narHashLen {
		return nil, fmt.Errorf("nar hash %q: want %d base32 characters, got %d", s, narHashLen, len(enc))
	}
	sum, err := fromNixBase32(enc)
	if err != nil {
		return nil, fmt.Errorf("nar hash %q: %w", s, err)
	}
	if len(sum) != sha256.Size {
		return nil, fmt.Errorf("nar hash %q: want %d bytes, got %d", s, sha256.Size, len(sum))
	}
	return sum, nil
}

// toNixBase32 encodes bytes with the Nix base32 alphabet, last byte first
func toNixBase32(b []byte) string {
	length := (len(b)*8-1)/5 + 1
	result := make([]byte, length)

	for n := 0; n < length; n++ {
		bit := n * 5
		i := bit / 8
		j := bit % 8

		v := b[i] >> uint(j)
		if i < len(b)-1 {
			v |= b[i+1] << uint(8-j)
		}
		result[length-n-1] = nixBase32Alphabet[v&0x1f]
	}

	return string(result)
}

// fromNixBase32 is the inverse of toNixBase32
func fromNixBase32(s string) ([]byte, error) {
	size := len(s) * 5 / 8
	out := make([]byte, size)

	for n := 0; n < len(s); n++ {
		c := s[len(s)-n-1]
		digit := strings.IndexByte(nixBase32Alphabet, c)
		if digit < 0 {
			return nil, fmt.Errorf("invalid character in base32 string: %c", c)
		}

		bit := n * 5
		i := bit / 8
		j := bit % 8

		if i >= size {
			if digit != 0 {
				return nil, fmt.Errorf("invalid base32 encoding")
			}
			continue
		}
		out[i] |= byte(digit) << uint(j)

		carry := byte(digit) >> uint(8-j)
		if i < size-1 {
			out[i+1] |= carry
		} else if carry != 0 {
			return nil, fmt.Errorf("invalid base32 encoding")
		}
	}

	return out, nil
}
