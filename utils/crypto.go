package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var JWTSecret []byte

// InitJWTSecret charge JWT_SECRET, ou en génère un éphémère (les tokens ne
// survivent alors pas à un redémarrage).
func InitJWTSecret() {
	secret := os.Getenv("JWT_SECRET")
	if secret != "" {
		JWTSecret = []byte(secret)
		return
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.WithError(err).Fatal("Failed to generate JWT secret")
	}
	JWTSecret = []byte(base64.StdEncoding.EncodeToString(buf))
	log.Warn("JWT_SECRET not set, using an ephemeral secret")
}

// HashPassword hache un mot de passe avec bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash vérifie un mot de passe contre son hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken émet un JWT signé portant l'identifiant du compte et le rôle
// résolu, valable 24 heures.
func GenerateToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(JWTSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
