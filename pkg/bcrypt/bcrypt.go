package bcrypt

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// IBcrypt turns a plaintext password into a salted digest. Digests are not
// comparable across calls.
type IBcrypt interface {
	HashPassword(password string) (string, error)
}

// MaxPasswordBytes is how much of a password bcrypt reads. Longer input is
// cut to this length before hashing.
const MaxPasswordBytes = 72

type bcryptService struct {
	cost int
}

// New reads the cost from BCRYPT_COST and falls back to bcrypt.DefaultCost.
func New() IBcrypt {
	cost, err := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if err != nil {
		cost = bcrypt.DefaultCost
	}
	return NewWithCost(cost)
}

func NewWithCost(cost int) IBcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptService{
		cost: cost,
	}
}

func (b *bcryptService) HashPassword(password string) (string, error) {
	input := []byte(password)
	if len(input) > MaxPasswordBytes {
		input = input[:MaxPasswordBytes]
	}

	result, err := bcrypt.GenerateFromPassword(input, b.cost)
	if err != nil {
		return "", err
	}
	return string(result), nil
}
