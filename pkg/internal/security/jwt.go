package security

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// Claims is the payload minted by the external auth system. This service
// only ever reads tokens; issuing them happens elsewhere.
type Claims struct {
	jwt.RegisteredClaims

	Name string `json:"name"`
	Nick string `json:"nick"`
}

func ReadToken(raw string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString("security.token_secret")), nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to parse token: %v", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	return &claims, nil
}
