package crypto

// nolint:gosec // md5 and sha1 are mandated by the spot signing scheme
import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
)

// Hash types supported by GetHMAC
const (
	HashSHA1 = iota
	HashSHA256
	HashMD5
)

var errUnsupportedHashType = errors.New("unsupported hash type")

// HexEncodeToString takes in a byte array and returns its lowercase
// hexadecimal representation
func HexEncodeToString(input []byte) string {
	return hex.EncodeToString(input)
}

// Base64Encode takes in a byte array then returns an encoded base64 string
func Base64Encode(input []byte) string {
	return base64.StdEncoding.EncodeToString(input)
}

func hasherFor(hashType int) (func() hash.Hash, error) {
	switch hashType {
	case HashSHA1:
		return sha1.New, nil
	case HashSHA256:
		return sha256.New, nil
	case HashMD5:
		return md5.New, nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnsupportedHashType, hashType)
	}
}

// GetHMAC returns a keyed-hash message authentication code using the desired
// hashtype
func GetHMAC(hashType int, input, key []byte) ([]byte, error) {
	hasher, err := hasherFor(hashType)
	if err != nil {
		return nil, err
	}
	h := hmac.New(hasher, key)
	h.Write(input)
	return h.Sum(nil), nil
}

// Sha1ToHex takes a string, sha1 hashes it and returns a hex string of the
// result
func Sha1ToHex(data string) string {
	h := sha1.Sum([]byte(data)) // nolint:gosec // required by the spot signing scheme
	return hex.EncodeToString(h[:])
}
