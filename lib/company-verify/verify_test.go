package companyverify

import (
	dbmodels "attachment-hub-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tokens map[string]*dbmodels.CompanyVerifyToken
}

func (f *fakeStore) Create(rec dbmodels.CompanyVerifyToken) error {
	f.tokens[rec.TokenID] = &rec
	return nil
}

func (f *fakeStore) GetByTokenID(tokenID string) (*dbmodels.CompanyVerifyToken, error) {
	return f.tokens[tokenID], nil
}

func (f *fakeStore) MarkUsed(tokenID string, usedAt time.Time) (bool, error) {
	rec, ok := f.tokens[tokenID]
	if !ok || rec.DateUsed != nil {
		return false, nil
	}
	rec.DateUsed = &usedAt
	return true, nil
}

func TestConsume(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	signer := NewSigner("secret", 3600, clock)

	t.Run("valid link is single use", func(t *testing.T) {
		store := &fakeStore{tokens: map[string]*dbmodels.CompanyVerifyToken{}}
		uid, token, err := signer.Issue(store, "user-1")
		require.NoError(t, err)
		require.Len(t, store.tokens, 1)

		userID, err := signer.Consume(store, uid, token)
		require.NoError(t, err)
		require.Equal(t, "user-1", userID)

		_, err = signer.Consume(store, uid, token)
		require.ErrorIs(t, err, ErrInvalidLink)
	})
	t.Run("uid must match the token subject", func(t *testing.T) {
		store := &fakeStore{tokens: map[string]*dbmodels.CompanyVerifyToken{}}
		_, token, err := signer.Issue(store, "user-1")
		require.NoError(t, err)
		_, err = signer.Consume(store, EncodeUID("user-2"), token)
		require.ErrorIs(t, err, ErrInvalidLink)
	})
	t.Run("expired link", func(t *testing.T) {
		store := &fakeStore{tokens: map[string]*dbmodels.CompanyVerifyToken{}}
		uid, token, err := signer.Issue(store, "user-1")
		require.NoError(t, err)
		later := NewSigner("secret", 3600, func() time.Time { return now.Add(2 * time.Hour) })
		_, err = later.Consume(store, uid, token)
		require.ErrorIs(t, err, ErrInvalidLink)
	})
	t.Run("foreign signature", func(t *testing.T) {
		store := &fakeStore{tokens: map[string]*dbmodels.CompanyVerifyToken{}}
		uid, token, err := NewSigner("other", 3600, clock).Issue(store, "user-1")
		require.NoError(t, err)
		_, err = signer.Consume(store, uid, token)
		require.ErrorIs(t, err, ErrInvalidLink)
	})
	t.Run("garbage uid", func(t *testing.T) {
		store := &fakeStore{tokens: map[string]*dbmodels.CompanyVerifyToken{}}
		_, err := signer.Consume(store, "%%%", "x")
		require.ErrorIs(t, err, ErrInvalidLink)
	})
}

func TestLink(t *testing.T) {
	link := NewSigner("s", 1, time.Now).Link("https://hub.example.com", "dXNlcg", "abc")
	require.Equal(t, "https://hub.example.com/api/v1/companies/verify/dXNlcg/abc", link)
}
