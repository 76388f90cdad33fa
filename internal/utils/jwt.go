package utils // package utils provides helper functions for token creation and hashing

import (
    "crypto/rand"  // secure random generation for token identifiers
    "encoding/hex" // hex encoding for token identifiers
    "time"         // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens

    "github.com/iliyamo/store-rating/internal/model"
)

// AccessToken represents a signed JWT access token along with its expiry and
// identifier.  The Token field contains the JWT string.  Exp stores the
// expiration timestamp; JTI is the unique token identifier used by the
// revocation denylist.  Access tokens are presented in the Authorization
// header when calling protected endpoints.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
    JTI   string    // unique identifier embedded in the jti claim
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the user's role, and a TTL in minutes.  The
// JWT claims are: subject (sub), role, expiration (exp), issued at (iat) and
// token id (jti).  The expiry claim is always populated — a token outlives
// neither its TTL nor a denylist entry for its jti.
func NewAccessToken(secret string, userID uint64, role model.Role, ttlMin int) (AccessToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    jti, err := randomHex(16)
    if err != nil {
        return AccessToken{}, err
    }
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": role.String(),
        "exp":  exp.Unix(),
        "iat":  time.Now().UTC().Unix(),
        "jti":  jti,
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp, JTI: jti}, nil
}

// randomHex returns a hex‑encoded string generated from n bytes of
// cryptographically secure random data.  It is used to produce token
// identifiers.  If the random number generator fails, an error is returned.
func randomHex(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    return hex.EncodeToString(buf), nil
}
