// Package encryption предназначен для шифрования данных
package encryption

// Encrypter преобразует сообщение в последовательность чисел,
// по одному на каждый байт исходного текста.
type Encrypter interface {
	Encrypt(plaintext []byte) (ciphertext []int64, err error)
}

// Decrypter восстанавливает исходное сообщение из последовательности чисел.
type Decrypter interface {
	Decrypt(ciphertext []int64) (plaintext []byte, err error)
}
