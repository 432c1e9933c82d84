package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// optsDigestLen is the number of hex chars of the options digest kept in
// a key. The operator hash is kept whole.
const optsDigestLen = 24

// hashKey joins kind, the operator hash and a digest of opts:
//
//	layout:<operator hash>:<opts digest>
//
// Keeping the operator hash readable lets a backend scan every entry of one
// operator by prefix.
func hashKey(kind, operatorHash string, opts any) string {
	data, _ := json.Marshal(opts)
	return kind + ":" + operatorHash + ":" + Hash(data)[:optsDigestLen]
}

// Hash returns the hex SHA-256 of data. Operator hashes and ETags use it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
