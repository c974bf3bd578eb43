package ftoa

// i2a is the ASCII decimal representation of 00..99 concatenated; a
// lookup table shared by the exponent renderer and the base-10
// formatter.
const i2a = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// render writes d and p into s in exponential notation (D[.DDD]e±EE[E])
// and returns the number of bytes written. nd must be the number of
// decimal digits in d.
func render(s []byte, d uint64, p int, nd int) int {
	formatBase10(s[1:1+nd], d)
	p += nd - 1

	s[0] = s[1]
	n := nd
	if n > 1 {
		s[1] = '.'
		n++
	}

	s[n] = 'e'
	if p < 0 {
		s[n+1] = '-'
		p = -p
	} else {
		s[n+1] = '+'
	}
	if p < 100 {
		s[n+2] = i2a[p*2]
		s[n+3] = i2a[p*2+1]
		return n + 4
	}
	s[n+2] = '0' + byte(p/100)
	s[n+3] = i2a[(p%100)*2]
	s[n+4] = i2a[(p%100)*2+1]
	return n + 5
}

// formatBase10 fills a with the decimal representation of u,
// right-justified; the caller is responsible for a being large enough.
// Leading positions are padded with '0' when u is shorter than a.
func formatBase10(a []byte, u uint64) {
	nd := len(a)
	for nd >= 8 {
		x3210 := uint32(u % 100000000)
		u /= 100000000
		x32, x10 := x3210/10000, x3210%10000
		x1, x0 := (x10/100)*2, (x10%100)*2
		x3, x2 := (x32/100)*2, (x32%100)*2
		a[nd-1] = i2a[x0+1]
		a[nd-2] = i2a[x0]
		a[nd-3] = i2a[x1+1]
		a[nd-4] = i2a[x1]
		a[nd-5] = i2a[x2+1]
		a[nd-6] = i2a[x2]
		a[nd-7] = i2a[x3+1]
		a[nd-8] = i2a[x3]
		nd -= 8
	}

	x := uint32(u)
	if nd >= 4 {
		x10 := x % 10000
		x /= 10000
		x1, x0 := (x10/100)*2, (x10%100)*2
		a[nd-1] = i2a[x0+1]
		a[nd-2] = i2a[x0]
		a[nd-3] = i2a[x1+1]
		a[nd-4] = i2a[x1]
		nd -= 4
	}
	if nd >= 2 {
		x0 := (x % 100) * 2
		x /= 100
		a[nd-1] = i2a[x0+1]
		a[nd-2] = i2a[x0]
		nd -= 2
	}
	if nd > 0 {
		a[0] = '0' + byte(x)
	}
}
