package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"labourmandi/models"
	"labourmandi/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// GoogleClaims holds the identity claims extracted from a verified token.
type GoogleClaims struct {
	Email   string
	Name    string
	Picture string
}

// GoogleTokenVerifier validates a Google ID token and returns its claims.
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken, audience string) (*GoogleClaims, error)
}

const googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

var (
	googlePublicKeys  map[string]*rsa.PublicKey
	googleKeysMutex   sync.RWMutex
	googleKeysExpires time.Time
)

type googleJWK struct {
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type googleJWKResponse struct {
	Keys []googleJWK `json:"keys"`
}

// JWKSVerifier verifies token signatures against Google's published keys.
type JWKSVerifier struct{}

// getGooglePublicKeys fetches and caches Google's public keys. Google rotates
// them frequently, so the cache lives for an hour.
func getGooglePublicKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	googleKeysMutex.RLock()
	if time.Now().Before(googleKeysExpires) && googlePublicKeys != nil {
		defer googleKeysMutex.RUnlock()
		return googlePublicKeys, nil
	}
	googleKeysMutex.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleCertsURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google certs: %w", err)
	}
	defer resp.Body.Close()

	var keyResp googleJWKResponse
	if err := json.NewDecoder(resp.Body).Decode(&keyResp); err != nil {
		return nil, fmt.Errorf("failed to decode Google keys: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey)
	for _, key := range keyResp.Keys {
		pubKey, err := convertJWKToPublicKey(key.N, key.E)
		if err != nil {
			return nil, fmt.Errorf("failed to convert JWK to public key: %w", err)
		}
		keys[key.Kid] = pubKey
	}

	googleKeysMutex.Lock()
	googlePublicKeys = keys
	googleKeysExpires = time.Now().Add(1 * time.Hour)
	googleKeysMutex.Unlock()

	return keys, nil
}

// convertJWKToPublicKey converts base64url encoded modulus and exponent to rsa.PublicKey.
func convertJWKToPublicKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	var exp int
	for _, b := range eb {
		exp = exp<<8 + int(b)
	}

	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: exp}, nil
}

// Verify checks the token's signature, issuer, expiry and, when an audience
// is configured, the aud claim.
func (JWKSVerifier) Verify(ctx context.Context, idToken, audience string) (*GoogleClaims, error) {
	keys, err := getGooglePublicKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google public keys: %w", err)
	}

	// Parse without verification first, just to read the kid header.
	parser := new(jwt.Parser)
	unverified, _, err := parser.ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	kid, ok := unverified.Header["kid"].(string)
	if !ok {
		return nil, errors.New("token missing kid header")
	}
	pubKey, exists := keys[kid]
	if !exists {
		return nil, errors.New("no matching Google public key found")
	}

	token, err := jwt.Parse(idToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return pubKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid Google ID token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse claims")
	}

	if iss, ok := claims["iss"].(string); !ok || (iss != "accounts.google.com" && iss != "https://accounts.google.com") {
		return nil, errors.New("invalid issuer in Google ID token")
	}
	if audience != "" {
		if aud, ok := claims["aud"].(string); !ok || aud != audience {
			return nil, errors.New("invalid audience in Google ID token")
		}
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return nil, errors.New("google ID token expired")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, errors.New("email claim not found in Google ID token")
	}
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &GoogleClaims{
		Email:   strings.ToLower(email),
		Name:    name,
		Picture: picture,
	}, nil
}

// GoogleSignIn verifies the ID token, provisions a customer account on first
// sight and issues a session. Provisioned accounts keep the email in the
// phone column so the unique index covers both identity paths.
func (s *DefaultAuthService) GoogleSignIn(ctx context.Context, idToken string) (*models.User, string, error) {
	claims, err := s.Verifier.Verify(ctx, idToken, s.Audience)
	if err != nil {
		utils.GetLogger().Warn("GoogleSignIn: token rejected", zap.Error(err))
		return nil, "", ErrInvalidToken
	}

	usr, err := s.Users.GetByPhone(claims.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if usr == nil {
		name := claims.Name
		if name == "" {
			name = strings.SplitN(claims.Email, "@", 2)[0]
		}
		avatar := claims.Picture
		if avatar == "" {
			avatar = AvatarURL(claims.Email)
		}
		created := models.User{
			Phone:         claims.Email,
			Email:         claims.Email,
			Name:          name,
			UserType:      models.UserTypeCustomer,
			AvatarURL:     avatar,
			IsOnline:      true,
			WalletBalance: s.SignupBonus,
		}
		if err := s.Users.Create(&created); err != nil {
			return nil, "", fmt.Errorf("failed to create user: %w", err)
		}
		usr = &created
	} else {
		usr, err = s.Users.Update(usr.ID, map[string]any{"is_online": true})
		if err != nil {
			return nil, "", fmt.Errorf("failed to update user: %w", err)
		}
	}

	token, err := s.Sessions.Create(ctx, usr.ID.String())
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	return usr, token, nil
}
