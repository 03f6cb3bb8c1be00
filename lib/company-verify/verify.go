package companyverify

import (
	companyverifystore "attachment-hub-backend/lib/company-verify/store"
	dbmodels "attachment-hub-backend/models/db"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const purpose = "company-email-verify"

var ErrInvalidLink = errors.New("invalid or expired verification link")

// Provider issues and consumes single-use email verification links.
// The store is passed in so the caller can run Consume inside its own transaction.
type Provider interface {
	Issue(store companyverifystore.Provider, userID string) (uid, token string, err error)
	Consume(store companyverifystore.Provider, uid, token string) (userID string, err error)
	Link(domain, uid, token string) string
}

var Instance Provider

func NewHandler(secret string, expireInSec int64) {
	Instance = NewSigner(secret, expireInSec, time.Now)
}

func NewSigner(secret string, expireInSec int64, now func() time.Time) Provider {
	return impl{
		secret:      []byte(secret),
		expireInSec: expireInSec,
		now:         now,
	}
}

type impl struct {
	secret      []byte
	expireInSec int64
	now         func() time.Time
}

type verifyClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (i impl) Issue(store companyverifystore.Provider, userID string) (uid, token string, err error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(time.Duration(i.expireInSec) * time.Second)
	tokenID := uuid.NewString()
	err = store.Create(dbmodels.CompanyVerifyToken{
		UserID:      userID,
		TokenID:     tokenID,
		DateExpires: expiresAt,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "verify token save failed")
	}
	claims := verifyClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", "", errors.Wrap(err, "verify token sign failed")
	}
	return EncodeUID(userID), token, nil
}

func (i impl) Consume(store companyverifystore.Provider, uid, token string) (userID string, err error) {
	userID, err = DecodeUID(uid)
	if err != nil {
		return "", ErrInvalidLink
	}
	claims := verifyClaims{}
	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return "", ErrInvalidLink
	}
	if claims.Purpose != purpose || claims.Subject != userID || claims.ID == "" {
		return "", ErrInvalidLink
	}
	rec, err := store.GetByTokenID(claims.ID)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.UserID != userID || rec.DateExpires.Before(i.now()) {
		return "", ErrInvalidLink
	}
	ok, err := store.MarkUsed(claims.ID, i.now())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidLink
	}
	return userID, nil
}

func (i impl) Link(domain, uid, token string) string {
	return fmt.Sprintf("%s/api/v1/companies/verify/%s/%s", domain, uid, token)
}

func EncodeUID(userID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(userID))
}

func DecodeUID(uid string) (string, error) {
	data, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
