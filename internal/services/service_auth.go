package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogbase/dto"
	"blogbase/internal/apperr"
	"blogbase/internal/models"
	"blogbase/internal/repository"
	"blogbase/internal/utils"
)

// errInvalidCredentials is deliberately the same for unknown email and wrong
// password so a caller cannot probe which field was wrong.
func errInvalidCredentials() error {
	return apperr.New(apperr.Auth, "invalid credentials")
}

type AuthService struct {
	Users  repository.UserStore
	Secret string
	TTL    time.Duration
}

type sessionClaims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

func (s *AuthService) Signup(ctx context.Context, req dto.SignupReq) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.New(apperr.Validation, "name is required")
	}
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, apperr.New(apperr.Validation, "email is not valid")
	}
	if !utils.IsStrongPassword(req.Password) {
		return nil, apperr.New(apperr.Validation,
			"password must be at least 8 characters with upper case, lower case, a digit and a symbol")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "hash password", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Bio:          strings.TrimSpace(req.Bio),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			return "", errInvalidCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errInvalidCredentials()
	}

	return s.IssueToken(user.ID)
}

func (s *AuthService) IssueToken(uid bson.ObjectID) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UID: uid.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.Secret))
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "sign token", err)
	}
	return signed, nil
}

// VerifyToken validates the signature and expiry and returns the user id the
// token is bound to.
func (s *AuthService) VerifyToken(tokenStr string) (bson.ObjectID, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			return []byte(s.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return bson.NilObjectID, apperr.New(apperr.Auth, "invalid or expired session")
	}

	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, apperr.New(apperr.Auth, "invalid or expired session")
	}
	return oid, nil
}
