package renderers

// Pure integer mixing hashes. All "random-looking" texture and placement
// decisions derive from these so every pattern is stable frame-to-frame and
// reproducible across runs. Never replace with a stateful PRNG.

func mix2(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h ^= h >> 13
	h *= 1274126177
	h ^= h >> 16
	return h
}

func mix3(x, y, z int) uint32 {
	h := mix2(x, y)
	h += uint32(z) * 2246822519
	h ^= h >> 13
	h *= 3266489917
	h ^= h >> 16
	return h
}
