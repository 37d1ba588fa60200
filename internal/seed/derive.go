package seed

import "hash/crc32"

// Checksum is the seed-derivation primitive: CRC-32 (IEEE) of the UTF-8
// bytes of s. It is stable across processes and platforms, so re-seeding a
// fresh database always produces the same ratings, fleets and fares.
func Checksum(s string) uint32 {
	return crc32.ChecksumIEEE([]byte(s))
}

// ProviderRating derives a static rating in [4.0, 4.9] from the name.
func ProviderRating(name string) float64 {
	return 4.0 + float64(Checksum(name)%10)/10
}

// ProviderFleetSize derives a static fleet size in [10, 29] from the name.
func ProviderFleetSize(name string) int {
	return int(10 + Checksum(name)%20)
}
