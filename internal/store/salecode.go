package store

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"CornerStore/internal/model"
)

const (
	saleCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	saleCodeLen      = 4

	maxSaleCodeAttempts = 32
)

// RandomSaleCode draws four uppercase letters. It does not check for
// collisions; see GenerateSaleCode.
func RandomSaleCode() string {
	b := make([]byte, saleCodeLen)
	for i := range b {
		b[i] = saleCodeAlphabet[rand.IntN(len(saleCodeAlphabet))]
	}
	return string(b)
}

// GenerateSaleCode returns a code not yet present in the ledger.
func (s *Store) GenerateSaleCode() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uniqueSaleCode()
}

func (s *Store) uniqueSaleCode() (string, error) {
	for i := 0; i < maxSaleCodeAttempts; i++ {
		code := s.saleCode()
		if _, taken := s.ledger.Find(code); !taken {
			return code, nil
		}
		s.log.Debug("sale code collision", zap.String("code", code), zap.Int("attempt", i+1))
	}
	return "", fmt.Errorf("%w: no free code after %d attempts", model.ErrCodeExhausted, maxSaleCodeAttempts)
}
