// Package jwt signs and verifies the admin session tokens.
package jwt

import (
	"github.com/Laisky/errors/v2"
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// JWT signs and parses session tokens with a shared HS256 secret.
type JWT struct {
	secret []byte
}

// New create a new JWT signer
func New(secret []byte) (*JWT, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty jwt secret")
	}

	return &JWT{secret: secret}, nil
}

// Sign sign user claims into a token string
func (j *JWT) Sign(uc *UserClaims) (string, error) {
	token, err := jwtLib.NewWithClaims(jwtLib.SigningMethodHS256, uc).
		SignedString(j.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return token, nil
}

// Parse parse and verify a token string into user claims
func (j *JWT) Parse(token string) (*UserClaims, error) {
	uc := new(UserClaims)
	if _, err := jwtLib.ParseWithClaims(token, uc,
		func(t *jwtLib.Token) (any, error) {
			if _, ok := t.Method.(*jwtLib.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method `%v`", t.Header["alg"])
			}

			return j.secret, nil
		},
		jwtLib.WithExpirationRequired(),
		jwtLib.WithIssuedAt(),
	); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	return uc, nil
}
