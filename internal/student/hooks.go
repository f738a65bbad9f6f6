package student

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// BcryptHasher hashes with a fixed cost taken from configuration.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Hooks run around every full-document save of a student.
type Hooks struct {
	schema *StorageSchema
	hasher PasswordHasher
}

func NewHooks(schema *StorageSchema, hasher PasswordHasher) *Hooks {
	return &Hooks{schema: schema, hasher: hasher}
}

// BeforeSave validates s against the storage schema and replaces the
// plaintext password with its hash. It must finish before the write starts.
func (h *Hooks) BeforeSave(s *Student) error {
	if err := h.schema.Validate(s); err != nil {
		return err
	}
	if s.Password == "" {
		return nil
	}
	hashed, err := h.hasher.Hash(s.Password)
	if err != nil {
		return err
	}
	s.Password = hashed
	return nil
}

// AfterSave clears the password on the value handed back to the caller. The
// stored hash is untouched.
func (h *Hooks) AfterSave(s *Student) {
	s.Password = ""
}
