package generator

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform random integers. Generators take it as an explicit
// dependency so tests can substitute a deterministic implementation.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be > 0.
	IntN(n int) (int, error)
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// CryptoSource is backed by crypto/rand, i.e. the OS entropy pool.
var CryptoSource Source = cryptoSource{}
