package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yihenew-et/RSA-test/internal/config"
	"github.com/yihenew-et/RSA-test/internal/encryption"
	"github.com/yihenew-et/RSA-test/internal/encryption/textbook"
	"github.com/yihenew-et/RSA-test/internal/keygen"
)

func main() {
	cfg := config.GetConfig()

	fmt.Printf("Enter a message (max %d chars): ", cfg.MaxMessageLen)
	message, err := readLine(os.Stdin, cfg.MaxMessageLen)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read message")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	generator := keygen.New(rng, keygen.Config{
		PrimeMin: cfg.PrimeMin,
		PrimeMax: cfg.PrimeMax,
		MaxDraws: cfg.MaxPrimeDraws,
	})
	keys, err := generator.Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate keys")
	}

	var encrypter encryption.Encrypter = textbook.NewEncrypter(keys.Public, cfg.MaxMessageLen)
	encrypted, err := encrypter.Encrypt(message)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encrypt message")
	}

	var decrypter encryption.Decrypter = textbook.NewDecrypter(keys.Private, cfg.MaxMessageLen)
	decrypted, err := decrypter.Decrypt(encrypted)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decrypt message")
	}

	printReport(keys, message, encrypted, decrypted)
}

// readLine читает одну строку, отбрасывает перевод строки
// и усекает результат до limit байт.
func readLine(r io.Reader, limit int) ([]byte, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	line := scanner.Bytes()
	if len(line) > limit {
		line = line[:limit]
	}
	return append([]byte(nil), line...), nil
}

func printReport(keys *keygen.KeyPair, message []byte, encrypted []int64, decrypted []byte) {
	fmt.Println("\nGenerated Keys:")
	fmt.Println("Generated prime numbers:")
	fmt.Printf("p = %d\n", keys.P)
	fmt.Printf("q = %d\n", keys.Q)
	fmt.Printf("n = p * q = %d\n", keys.Public.N)
	fmt.Printf("phi = (p-1)*(q-1) = %d\n", keys.Phi)
	fmt.Printf("Public Key (e, n): (%d, %d)\n", keys.Public.E, keys.Public.N)
	fmt.Printf("Private Key (d, n): (%d, %d)\n", keys.Private.D, keys.Private.N)

	fmt.Printf("\nOriginal Message: %s\n", message)
	printASCIIValues(message)

	fmt.Print("\nEncrypted Values: ")
	for _, c := range encrypted {
		fmt.Printf("%d ", c)
	}
	fmt.Println()

	fmt.Printf("\nDecrypted Message: %s\n", decrypted)
	printASCIIValues(decrypted)
}

func printASCIIValues(data []byte) {
	fmt.Print("ASCII values: ")
	for _, b := range data {
		fmt.Printf("%d ", b)
	}
	fmt.Println()
}
