package student_test

import (
	"errors"
	"testing"

	"student-service/internal/student"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockHasher struct {
	HashFunc func(plain string) (string, error)
	calls    int
}

func (m *mockHasher) Hash(plain string) (string, error) {
	m.calls++
	return m.HashFunc(plain)
}

func TestHooks(t *testing.T) {
	t.Run("BeforeSave_HashesPassword", func(t *testing.T) {
		hooks := student.NewHooks(student.NewStorageSchema(), student.NewBcryptHasher(bcrypt.MinCost))
		s := validStudent()

		require.NoError(t, hooks.BeforeSave(s))

		assert.NotEqual(t, "s3cret-pass", s.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(s.Password), []byte("s3cret-pass")))
	})

	t.Run("BeforeSave_UsesConfiguredCost", func(t *testing.T) {
		hooks := student.NewHooks(student.NewStorageSchema(), student.NewBcryptHasher(bcrypt.MinCost+1))
		s := validStudent()

		require.NoError(t, hooks.BeforeSave(s))

		cost, err := bcrypt.Cost([]byte(s.Password))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.MinCost+1, cost)
	})

	t.Run("BeforeSave_InvalidDocumentIsNotHashed", func(t *testing.T) {
		hasher := &mockHasher{HashFunc: func(plain string) (string, error) { return "hashed", nil }}
		hooks := student.NewHooks(student.NewStorageSchema(), hasher)
		s := validStudent()
		s.Guardian.FatherName = "john"

		err := hooks.BeforeSave(s)
		assert.ErrorIs(t, err, student.ErrInvalidInput)
		assert.Equal(t, 0, hasher.calls)
		assert.Equal(t, "s3cret-pass", s.Password)
	})

	t.Run("BeforeSave_HasherError", func(t *testing.T) {
		hashErr := errors.New("entropy exhausted")
		hasher := &mockHasher{HashFunc: func(plain string) (string, error) { return "", hashErr }}
		hooks := student.NewHooks(student.NewStorageSchema(), hasher)

		err := hooks.BeforeSave(validStudent())
		assert.ErrorIs(t, err, hashErr)
	})

	t.Run("BcryptHasher_InvalidCost", func(t *testing.T) {
		_, err := student.NewBcryptHasher(bcrypt.MaxCost + 1).Hash("pw")
		assert.Error(t, err)
	})

	t.Run("AfterSave_ClearsPassword", func(t *testing.T) {
		hooks := student.NewHooks(student.NewStorageSchema(), student.NewBcryptHasher(bcrypt.MinCost))
		s := validStudent()
		s.Password = "$2a$04$stored"

		hooks.AfterSave(s)
		assert.Empty(t, s.Password)
	})
}
