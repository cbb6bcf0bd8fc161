package geo

import "strings"

// Standard base32 geohash. The bucket key is deterministic from
// (lat,lng,precision) and is used purely as a candidate pre-filter in the
// key-value layer: entities in a bucket still go through the exact tests.
//
// Cell sizes by precision: 3 ≈ 156 km, 4 ≈ 39 km, 5 ≈ 5 km, 6 ≈ 1.2 km,
// 7 ≈ 150 m.

const geohashBase32 = "0123456789bcdefghjkmnpqrstuvwxyz"

var (
	geohashNeighbors = map[string][2]string{
		"n": {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
		"s": {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
		"e": {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
		"w": {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
	}
	geohashBorders = map[string][2]string{
		"n": {"prxz", "bcfguvyz"},
		"s": {"028b", "0145hjnp"},
		"e": {"bcfguvyz", "prxz"},
		"w": {"0145hjnp", "028b"},
	}
)

// GeohashEncode interleaves longitude and latitude bits, 5 bits per base32
// character, bisecting the coordinate ranges.
func GeohashEncode(lat, lng float64, precision int) string {
	if precision <= 0 {
		precision = 6
	}
	if precision > 12 {
		precision = 12
	}

	minLat, maxLat := -90.0, 90.0
	minLng, maxLng := -180.0, 180.0

	var b strings.Builder
	evenBit := true
	bit, ch := 0, 0

	for b.Len() < precision {
		if evenBit {
			mid := (minLng + maxLng) / 2
			if lng >= mid {
				ch |= 1 << (4 - bit)
				minLng = mid
			} else {
				maxLng = mid
			}
		} else {
			mid := (minLat + maxLat) / 2
			if lat >= mid {
				ch |= 1 << (4 - bit)
				minLat = mid
			} else {
				maxLat = mid
			}
		}
		evenBit = !evenBit
		bit++
		if bit == 5 {
			b.WriteByte(geohashBase32[ch])
			bit, ch = 0, 0
		}
	}
	return b.String()
}

// GeohashNeighbor returns the adjacent cell in direction "n", "s", "e" or
// "w", recursing into the parent when the last character sits on a border.
func GeohashNeighbor(hash, direction string) string {
	if len(hash) == 0 {
		return ""
	}

	last := hash[len(hash)-1]
	parent := hash[:len(hash)-1]

	// lookup row 0 serves even-length hashes, row 1 odd-length ones; cell
	// aspect flips with each character so the tables alternate too
	idx := len(hash) % 2

	if strings.IndexByte(geohashBorders[direction][idx], last) >= 0 && parent != "" {
		parent = GeohashNeighbor(parent, direction)
	}

	pos := strings.IndexByte(geohashNeighbors[direction][idx], last)
	if pos < 0 {
		return hash
	}
	return parent + string(geohashBase32[pos])
}

// GeohashNeighbors returns the cell plus its 8 surrounding cells, the 3x3
// grid probed around a query point.
func GeohashNeighbors(hash string) []string {
	n := GeohashNeighbor(hash, "n")
	s := GeohashNeighbor(hash, "s")
	return []string{
		hash,
		n, s,
		GeohashNeighbor(hash, "e"),
		GeohashNeighbor(hash, "w"),
		GeohashNeighbor(n, "e"),
		GeohashNeighbor(n, "w"),
		GeohashNeighbor(s, "e"),
		GeohashNeighbor(s, "w"),
	}
}
