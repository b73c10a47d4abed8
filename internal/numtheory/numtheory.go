// Package numtheory содержит элементарные теоретико-числовые функции,
// используемые при генерации ключей RSA: проверку простоты, НОД,
// обратный элемент по модулю и быстрое возведение в степень по модулю.
//
// Все функции работают с типом int64; этого достаточно, пока квадрат
// модуля помещается в int64, то есть для модулей примерно до 3*10^9.
package numtheory

import "errors"

var ErrNonPositiveModulus = errors.New("modulus must be positive")

// IsPrime проверяет простоту числа перебором нечетных делителей
// до целой части квадратного корня включительно.
func IsPrime(num int64) bool {
	if num <= 1 {
		return false
	}
	if num == 2 {
		return true
	}
	if num%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= num; i += 2 {
		if num%i == 0 {
			return false
		}
	}
	return true
}

// GCD вычисляет наибольший общий делитель неотрицательных чисел
// итеративным алгоритмом Евклида. GCD(0, 0) = 0.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse находит d в диапазоне [0, phi) такое, что (e*d) mod phi = 1,
// расширенным алгоритмом Евклида. Вызывающий обязан обеспечить
// взаимную простоту e и phi, иначе результат не определен.
// Для вырожденного модуля phi = 1 возвращается 0.
func ModInverse(e, phi int64) int64 {
	if phi == 1 {
		return 0
	}

	m0 := phi
	var x, y int64 = 1, 0
	for e > 1 {
		q := e / phi
		e, phi = phi, e%phi
		x, y = y, x-q*y
	}

	if x < 0 {
		x += m0
	}
	return x
}

// ModPow вычисляет (base^exp) mod mod бинарным возведением в степень,
// за O(log exp) умножений.
func ModPow(base, exp, mod int64) (int64, error) {
	if mod < 1 {
		return 0, ErrNonPositiveModulus
	}

	result := int64(1)
	base %= mod
	for exp > 0 {
		if exp%2 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exp /= 2
	}
	return result, nil
}
