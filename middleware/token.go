package middleware

import (
	"time"

	"github.com/o1egl/paseto"
	"github.com/pkg/errors"
)

// Footer yang menandai token milik aplikasi ini.
const tokenFooter = "basketly-auth"

const tokenTTL = 24 * time.Hour

const roleClaim = "role"

// IssueToken membuat token paseto v2 berisi id user sebagai subject dan
// claim role, berlaku 24 jam.
func IssueToken(secretKey []byte, userID, role string) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    userID,
		IssuedAt:   now,
		Expiration: now.Add(tokenTTL),
	}
	jsonToken.Set(roleClaim, role)

	token, err := paseto.NewV2().Encrypt(secretKey, jsonToken, tokenFooter)
	if err != nil {
		return "", errors.Wrap(err, "encrypting token")
	}
	return token, nil
}

// ParseToken mendekripsi token dan mengembalikan id user beserta role.
// Token kedaluwarsa atau footer yang tidak cocok dianggap tidak valid.
func ParseToken(secretKey []byte, token string) (userID, role string, err error) {
	var jsonToken paseto.JSONToken
	var footer string
	if err := paseto.NewV2().Decrypt(token, secretKey, &jsonToken, &footer); err != nil {
		return "", "", errors.Wrap(err, "decrypting token")
	}
	if footer != tokenFooter {
		return "", "", errors.New("unexpected token footer")
	}
	if time.Now().After(jsonToken.Expiration) {
		return "", "", errors.New("token expired")
	}
	return jsonToken.Subject, jsonToken.Get(roleClaim), nil
}
