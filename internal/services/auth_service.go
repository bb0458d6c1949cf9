package services

import (
	cryptorand "crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"
)

// AuthService issues and revokes API tokens. Credentials come from config:
// auth.username plus either auth.password_hash (argon2id, preferred) or a
// plain auth.password for local runs. Revoked tokens are tracked in redis
// when a client is available.
type AuthService struct {
	redis     *redis.Client
	validator *validator.Validate
	log       zerolog.Logger
}

// LoginRequest is the login payload
// @Description Login request structure
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required,min=6" example:"password123"`
}

// AuthResponse carries the issued token
// @Description Authentication response structure
type AuthResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}

func NewAuthService(redisClient *redis.Client, log zerolog.Logger) *AuthService {
	return &AuthService{
		redis:     redisClient,
		validator: validator.New(),
		log:       log,
	}
}

// Login authenticates the configured user and issues a JWT
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse "Login successful"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	s.log.Info().Str("remote", r.RemoteAddr).Msg("login attempt")

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req LoginRequest
	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request", http.StatusBadRequest, nil)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	if !s.checkCredentials(req.Username, req.Password) {
		s.log.Warn().Str("username", req.Username).Msg("login rejected")
		SendErrorResponse(w, "Invalid credentials", http.StatusUnauthorized, nil)
		return
	}

	expiresAt := time.Now().Add(tokenExpiry())
	token, err := generateJWT(req.Username, expiresAt)
	if err != nil {
		s.log.Error().Err(err).Msg("token generation failed")
		SendErrorResponse(w, "Internal server error", http.StatusInternalServerError, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AuthResponse{Token: token, ExpiresAt: expiresAt.Unix()})
}

// Logout revokes the presented token
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Missing bearer token"
// @Router /auth/logout [post]
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		SendErrorResponse(w, "Bearer token required", http.StatusBadRequest, nil)
		return
	}

	if s.redis != nil {
		expiry := tokenExpiry()
		if err := s.redis.Set(r.Context(), "revoked:"+parts[1], "1", expiry).Err(); err != nil {
			s.log.Error().Err(err).Msg("failed to revoke token")
			SendErrorResponse(w, "Internal server error", http.StatusInternalServerError, nil)
			return
		}
	} else {
		s.log.Warn().Msg("logout without redis, token stays valid until expiry")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

func (s *AuthService) checkCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(viper.GetString("auth.username"))) != 1 {
		return false
	}
	if hash := viper.GetString("auth.password_hash"); hash != "" {
		return verifyPassword(password, hash)
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(viper.GetString("auth.password"))) == 1
}

func tokenExpiry() time.Duration {
	hours := viper.GetInt("jwt.expiry_hours")
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func generateJWT(username string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	})
	return token.SignedString([]byte(viper.GetString("jwt.secret_key")))
}

// hashPassword produces the salt$hash encoding expected in auth.password_hash.
func hashPassword(password string) (string, error) {
	salt := make([]byte, viper.GetInt("argon2.salt_length"))
	if _, err := cryptorand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return fmt.Sprintf("%s$%s", base64.StdEncoding.EncodeToString(salt), base64.StdEncoding.EncodeToString(hash)), nil
}

func verifyPassword(password, hashedPassword string) bool {
	parts := strings.Split(hashedPassword, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	computedHash := argon2.IDKey([]byte(password), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return subtle.ConstantTimeCompare(hash, computedHash) == 1
}
