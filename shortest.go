package ftoa

// short computes the shortest decimal (d, p), with d*10**p == f, such
// that parsing the result back under round-to-nearest-even recovers
// exactly f. f must be finite and non-zero.
func short(b uint64) (d uint64, p int) {
	m, e := unpack(b)

	z := 11 // spare low bits below the 53-bit mantissa
	var min uint64
	if m == 1<<63 && e > minExp {
		// Exact power of two above the smallest normal (2**-1022):
		// the predecessor is half as far away as the successor.
		p = -skewed(e + z)
		min = m - 1<<(z-2)
	} else {
		if e < minExp {
			z = 11 + (minExp - e)
		}
		p = -log10Pow2(e + z)
		min = m - 1<<(z-1)
	}
	max := m + 1<<(z-1)
	odd := int(m>>uint(z)) & 1 // parity at the ULP boundary

	pre := prescale(e, p, log2Pow10(p))
	dmin := uscale(min, pre).nudge(odd).ceil()
	dmax := uscale(max, pre).nudge(-odd).floor()

	d = dmax / 10
	if d*10 >= dmin {
		return trimZeros(d, -(p - 1))
	}
	d = dmin
	if d < dmax {
		d = uscale(m, pre).round()
	}
	return d, -p
}
