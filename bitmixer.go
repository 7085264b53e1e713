package fsa

// PHI_C64 Golden ratio bit mixer.
const PHI_C64 = uint64(0x9e3779b97f4a7c15)

// MurmurHash3算法中的32位最终混合步骤
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// mixPhi combines an ordered sequence of ints; unlike a plain sum, the result depends on position.
func mixPhi(values ...int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h = (h ^ mix32(v)) * PHI_C64
		h ^= h >> 32
	}
	return h
}
