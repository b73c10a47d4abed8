// Package keygen реализует генерацию учебной пары ключей RSA
// на небольших простых числах. Ключи такого размера не обеспечивают
// никакой криптографической стойкости и пригодны только для демонстрации.
package keygen

import (
	"errors"
	"fmt"

	"github.com/yihenew-et/RSA-test/internal/numtheory"
)

var (
	ErrModulusTooSmall      = errors.New("modulus is too small to encode a byte")
	ErrNoCoprimeExponent    = errors.New("no public exponent coprime with totient")
	ErrPrimeSearchExhausted = errors.New("prime search attempts exhausted")
	ErrBadPrimeRange        = errors.New("invalid prime range")
)

// Rand поставляет равномерно распределенные случайные числа
// для выбора кандидатов в простые. Интерфейсу удовлетворяет *math/rand.Rand,
// в тестах вместо него подставляется детерминированная последовательность.
type Rand interface {
	Int63n(n int64) int64
}

type PublicKey struct {
	E int64
	N int64
}

type PrivateKey struct {
	D int64
	N int64
}

// KeyPair содержит производные величины генерации ключей.
// P, Q и Phi сохраняются только для вывода отчета.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
	P       int64
	Q       int64
	Phi     int64
}

type Config struct {
	PrimeMin int64
	PrimeMax int64
	MaxDraws int
}

type Generator struct {
	rng Rand
	cfg Config
}

func New(rng Rand, cfg Config) *Generator {
	if cfg.MaxDraws <= 0 {
		cfg.MaxDraws = 10000
	}
	return &Generator{rng: rng, cfg: cfg}
}

// Generate строит пару ключей: выбирает два различных простых p и q
// из настроенного диапазона, вычисляет модуль n и значение функции
// Эйлера phi, подбирает открытую экспоненту e и находит секретную
// экспоненту d как обратную к e по модулю phi.
func (g *Generator) Generate() (*KeyPair, error) {
	if g.cfg.PrimeMin < 2 || g.cfg.PrimeMax < g.cfg.PrimeMin {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadPrimeRange, g.cfg.PrimeMin, g.cfg.PrimeMax)
	}

	p, err := g.drawPrime(0)
	if err != nil {
		return nil, err
	}
	q, err := g.drawPrime(p)
	if err != nil {
		return nil, err
	}

	n := p * q
	phi := (p - 1) * (q - 1)

	// Каждый байт сообщения шифруется как вычет по модулю n,
	// поэтому при n <= 255 отображение байтов перестает быть взаимно
	// однозначным. Для диапазона [100, 1000] ветка недостижима,
	// но проверка обязательна.
	if n <= 255 {
		return nil, fmt.Errorf("%w: n = %d (p = %d, q = %d)", ErrModulusTooSmall, n, p, q)
	}

	e := g.findPublicExponent(phi)
	if e == 0 {
		return nil, fmt.Errorf("%w: phi = %d", ErrNoCoprimeExponent, phi)
	}
	d := numtheory.ModInverse(e, phi)

	return &KeyPair{
		Public:  PublicKey{E: e, N: n},
		Private: PrivateKey{D: d, N: n},
		P:       p,
		Q:       q,
		Phi:     phi,
	}, nil
}

// drawPrime выбирает простое число из [PrimeMin, PrimeMax] методом
// отбраковки, отвергая кандидата reject. Число попыток ограничено,
// чтобы патологический диапазон без простых не приводил к зависанию.
func (g *Generator) drawPrime(reject int64) (int64, error) {
	span := g.cfg.PrimeMax - g.cfg.PrimeMin + 1
	for i := 0; i < g.cfg.MaxDraws; i++ {
		candidate := g.rng.Int63n(span) + g.cfg.PrimeMin
		if candidate == reject || !numtheory.IsPrime(candidate) {
			continue
		}
		return candidate, nil
	}
	return 0, fmt.Errorf("%w: no prime in [%d, %d] after %d draws",
		ErrPrimeSearchExhausted, g.cfg.PrimeMin, g.cfg.PrimeMax, g.cfg.MaxDraws)
}

// findPublicExponent линейно перебирает e начиная с 3 и возвращает
// первое e < phi, взаимно простое с phi, либо 0 при исчерпании перебора.
func (g *Generator) findPublicExponent(phi int64) int64 {
	for e := int64(3); e < phi; e++ {
		if numtheory.GCD(e, phi) == 1 {
			return e
		}
	}
	return 0
}
