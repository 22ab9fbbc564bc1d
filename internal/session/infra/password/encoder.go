package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/hawk-session-service/internal/session/app/encoding"
)

type encoder struct {
	cost int
}

func NewEncoder() encoding.PasswordEncoder {
	return encoder{cost: bcrypt.DefaultCost}
}

// NewEncoderWithCost is meant for tests, low costs are insecure.
func NewEncoderWithCost(cost int) encoding.PasswordEncoder {
	return encoder{cost: cost}
}

func (e encoder) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

func (e encoder) CompareHash(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
