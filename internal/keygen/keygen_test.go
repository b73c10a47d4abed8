package keygen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yihenew-et/RSA-test/internal/numtheory"
)

// sequenceRand выдает заранее заданные значения, после их исчерпания — нули.
type sequenceRand struct {
	values []int64
	next   int
}

func (s *sequenceRand) Int63n(n int64) int64 {
	if s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next] % n
	s.next++
	return v
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	generator := New(rng, Config{PrimeMin: 100, PrimeMax: 1000})

	for i := 0; i < 100; i++ {
		keys, err := generator.Generate()
		require.NoError(t, err)

		assert.True(t, numtheory.IsPrime(keys.P))
		assert.True(t, numtheory.IsPrime(keys.Q))
		assert.NotEqual(t, keys.P, keys.Q)
		assert.GreaterOrEqual(t, keys.P, int64(100))
		assert.LessOrEqual(t, keys.P, int64(1000))
		assert.GreaterOrEqual(t, keys.Q, int64(100))
		assert.LessOrEqual(t, keys.Q, int64(1000))

		assert.Equal(t, keys.P*keys.Q, keys.Public.N)
		assert.Equal(t, keys.Public.N, keys.Private.N)
		assert.Greater(t, keys.Public.N, int64(255))
		assert.Equal(t, (keys.P-1)*(keys.Q-1), keys.Phi)

		e, d, phi := keys.Public.E, keys.Private.D, keys.Phi
		assert.Equal(t, int64(1), numtheory.GCD(e, phi))
		assert.Greater(t, e, int64(1))
		assert.Less(t, e, phi)
		assert.GreaterOrEqual(t, d, int64(0))
		assert.Less(t, d, phi)
		assert.Equal(t, int64(1), e*d%phi)

		// e — первое подходящее значение линейного перебора с 3.
		for smaller := int64(3); smaller < e; smaller++ {
			assert.NotEqual(t, int64(1), numtheory.GCD(smaller, phi))
		}
	}
}

func TestGenerateFixedPrimes(t *testing.T) {
	// Розыгрыши 1 и 3 над диапазоном [100, 1000] дают p = 101, q = 103.
	rng := &sequenceRand{values: []int64{1, 3}}
	generator := New(rng, Config{PrimeMin: 100, PrimeMax: 1000})

	keys, err := generator.Generate()
	require.NoError(t, err)

	assert.Equal(t, int64(101), keys.P)
	assert.Equal(t, int64(103), keys.Q)
	assert.Equal(t, int64(10403), keys.Public.N)
	assert.Equal(t, int64(10200), keys.Phi)
	assert.Equal(t, int64(7), keys.Public.E)
	assert.Equal(t, int64(8743), keys.Private.D)
	assert.Equal(t, int64(1), keys.Public.E*keys.Private.D%keys.Phi)
}

func TestGenerateRejectsEqualPrimes(t *testing.T) {
	// Первый розыгрыш для q повторяет p и должен быть отброшен.
	rng := &sequenceRand{values: []int64{1, 1, 3}}
	generator := New(rng, Config{PrimeMin: 100, PrimeMax: 1000})

	keys, err := generator.Generate()
	require.NoError(t, err)
	assert.Equal(t, int64(101), keys.P)
	assert.Equal(t, int64(103), keys.Q)
}

func TestGenerateModulusTooSmall(t *testing.T) {
	// Искусственно малые простые: p = 2, q = 3, n = 6 <= 255.
	rng := &sequenceRand{values: []int64{0, 1}}
	generator := New(rng, Config{PrimeMin: 2, PrimeMax: 3})

	_, err := generator.Generate()
	assert.ErrorIs(t, err, ErrModulusTooSmall)
}

func TestGeneratePrimeSearchExhausted(t *testing.T) {
	// В диапазоне [24, 28] простых нет.
	rng := rand.New(rand.NewSource(1))
	generator := New(rng, Config{PrimeMin: 24, PrimeMax: 28, MaxDraws: 100})

	_, err := generator.Generate()
	assert.ErrorIs(t, err, ErrPrimeSearchExhausted)
}

func TestGenerateBadPrimeRange(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "Min below two", cfg: Config{PrimeMin: 0, PrimeMax: 10}},
		{name: "Max below min", cfg: Config{PrimeMin: 100, PrimeMax: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := New(rand.New(rand.NewSource(1)), tt.cfg)
			_, err := generator.Generate()
			assert.ErrorIs(t, err, ErrBadPrimeRange)
		})
	}
}
