package chime

import "math/bits"

// Source yields uniformly distributed 32-bit words.
//
// All derived draws consume words in a fixed order, so two sources seeded alike
// produce identical clips.
type Source interface {
	Uint32() uint32
}

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// Twister is an MT19937 generator seeded the way CPython's random.seed seeds an int.
type Twister struct {
	mt  [mtN]uint32
	mti int
}

// NewTwister creates a Twister for seed. The absolute value of seed is split into
// little-endian 32-bit key words.
func NewTwister(seed int64) *Twister {
	u := uint64(seed)
	if seed < 0 {
		u = uint64(-seed)
	}
	key := []uint32{uint32(u)}
	if hi := uint32(u >> 32); hi != 0 {
		key = append(key, hi)
	}
	var t Twister
	t.seedArray(key)
	return &t
}

func (t *Twister) seedInt(s uint32) {
	t.mt[0] = s
	for i := 1; i < mtN; i++ {
		t.mt[i] = 1812433253*(t.mt[i-1]^(t.mt[i-1]>>30)) + uint32(i)
	}
	t.mti = mtN
}

func (t *Twister) seedArray(key []uint32) {
	t.seedInt(19650218)
	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		t.mt[i] = (t.mt[i] ^ ((t.mt[i-1] ^ (t.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			t.mt[0] = t.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		t.mt[i] = (t.mt[i] ^ ((t.mt[i-1] ^ (t.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			t.mt[0] = t.mt[mtN-1]
			i = 1
		}
	}
	t.mt[0] = 0x80000000
}

func (t *Twister) twist() {
	mag := [2]uint32{0, mtMatrixA}
	var kk int
	for ; kk < mtN-mtM; kk++ {
		y := (t.mt[kk] & mtUpperMask) | (t.mt[kk+1] & mtLowerMask)
		t.mt[kk] = t.mt[kk+mtM] ^ (y >> 1) ^ mag[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y := (t.mt[kk] & mtUpperMask) | (t.mt[kk+1] & mtLowerMask)
		t.mt[kk] = t.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag[y&1]
	}
	y := (t.mt[mtN-1] & mtUpperMask) | (t.mt[0] & mtLowerMask)
	t.mt[mtN-1] = t.mt[mtM-1] ^ (y >> 1) ^ mag[y&1]
	t.mti = 0
}

// Uint32 returns the next tempered word.
func (t *Twister) Uint32() uint32 {
	if t.mti >= mtN {
		t.twist()
	}
	y := t.mt[t.mti]
	t.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Random returns a float in [0, 1) with 53 bits of precision. It consumes two words.
func Random(src Source) float64 {
	a := src.Uint32() >> 5
	b := src.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uniform returns a float between a and b. It consumes two words.
func Uniform(src Source, a, b float64) float64 {
	return a + (b-a)*Random(src)
}

// IntRange returns an integer in [a, b], both ends included, by rejection sampling
// on the bit length of the range. It consumes one word per attempt.
// It panics if b < a.
func IntRange(src Source, a, b int) int {
	if b < a {
		panic("chime: empty integer range")
	}
	n := uint64(b-a) + 1
	k := bits.Len64(n)
	r := randBits(src, k)
	for r >= n {
		r = randBits(src, k)
	}
	return a + int(r)
}

// randBits returns k random bits, low word first, matching getrandbits.
func randBits(src Source, k int) uint64 {
	if k <= 32 {
		return uint64(src.Uint32() >> (32 - uint(k)))
	}
	var r uint64
	for shift := uint(0); k > 0; shift += 32 {
		w := src.Uint32()
		if k < 32 {
			w >>= 32 - uint(k)
		}
		r |= uint64(w) << shift
		k -= 32
	}
	return r
}
