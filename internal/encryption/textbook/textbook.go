// Package textbook реализует учебный вариант RSA: каждый байт сообщения
// шифруется независимо возведением в степень по модулю, без набивки
// и сцепления блоков. Одинаковые байты дают одинаковые шифрованные
// значения — это свойство исходной учебной схемы.
package textbook

import (
	"errors"
	"fmt"

	"github.com/yihenew-et/RSA-test/internal/keygen"
	"github.com/yihenew-et/RSA-test/internal/numtheory"
)

var (
	ErrMessageTooLong       = errors.New("message exceeds maximum length")
	ErrCiphertextOutOfRange = errors.New("ciphertext value out of range")
)

const DefaultMaxMessageLen = 100

type Encrypter struct {
	publicKey keygen.PublicKey
	maxLen    int
}

func NewEncrypter(key keygen.PublicKey, maxLen int) *Encrypter {
	if maxLen <= 0 {
		maxLen = DefaultMaxMessageLen
	}
	return &Encrypter{publicKey: key, maxLen: maxLen}
}

// Encrypt вычисляет c = m^e mod n для каждого байта m сообщения.
func (e *Encrypter) Encrypt(plaintext []byte) ([]int64, error) {
	if len(plaintext) > e.maxLen {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrMessageTooLong, len(plaintext), e.maxLen)
	}

	ciphertext := make([]int64, 0, len(plaintext))
	for _, m := range plaintext {
		c, err := numtheory.ModPow(int64(m), e.publicKey.E, e.publicKey.N)
		if err != nil {
			return nil, err
		}
		ciphertext = append(ciphertext, c)
	}
	return ciphertext, nil
}

type Decrypter struct {
	privateKey keygen.PrivateKey
	maxLen     int
}

func NewDecrypter(key keygen.PrivateKey, maxLen int) *Decrypter {
	if maxLen <= 0 {
		maxLen = DefaultMaxMessageLen
	}
	return &Decrypter{privateKey: key, maxLen: maxLen}
}

// Decrypt вычисляет m = c^d mod n для каждого значения c шифртекста.
// Значения вне [0, n) отвергаются до возведения в степень.
func (d *Decrypter) Decrypt(ciphertext []int64) ([]byte, error) {
	if len(ciphertext) > d.maxLen {
		return nil, fmt.Errorf("%w: %d values, limit %d", ErrMessageTooLong, len(ciphertext), d.maxLen)
	}

	plaintext := make([]byte, 0, len(ciphertext))
	for _, c := range ciphertext {
		if c < 0 || c >= d.privateKey.N {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrCiphertextOutOfRange, c, d.privateKey.N)
		}
		m, err := numtheory.ModPow(c, d.privateKey.D, d.privateKey.N)
		if err != nil {
			return nil, err
		}
		plaintext = append(plaintext, byte(m))
	}
	return plaintext, nil
}
