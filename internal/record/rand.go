package record

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	upperAlnum   = upperLetters + "0123456789"
)

var bicCountries = []string{"US", "GB", "DE", "FR", "CA", "IN", "AU", "SG"}

// tsWithin returns a random timestamp on the given UTC day.
func tsWithin(r *rand.Rand, day time.Time) time.Time {
	return day.Add(time.Duration(r.Intn(86400)) * time.Second)
}

// amount returns a uniform amount in [lo, hi), rounded to cents.
func amount(r *rand.Rand, lo, hi float64) float64 {
	return round2(lo + r.Float64()*(hi-lo))
}

// purchaseAmount skews card purchases toward small tickets.
func purchaseAmount(r *rand.Rand) float64 {
	return round2(triangular(r, 5, 60, 300))
}

// triangular samples a triangular distribution over [lo, hi] peaking at mode.
func triangular(r *rand.Rand, lo, mode, hi float64) float64 {
	u := r.Float64()
	c := (mode - lo) / (hi - lo)
	if u < c {
		return lo + math.Sqrt(u*(hi-lo)*(mode-lo))
	}
	return hi - math.Sqrt((1-u)*(hi-lo)*(hi-mode))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// weighted picks one item using integer weights. len(weights) must equal len(items).
func weighted(r *rand.Rand, items []string, weights []int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := r.Intn(total)
	for i, w := range weights {
		if n < w {
			return items[i]
		}
		n -= w
	}
	return items[len(items)-1]
}

func choice(r *rand.Rand, items []string) string {
	return items[r.Intn(len(items))]
}

func digits(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + r.Intn(10))
	}
	return string(b)
}

func randFrom(r *rand.Rand, set string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = set[r.Intn(len(set))]
	}
	return string(b)
}

// swiftBIC builds a BIC-shaped string: 4 bank letters, 2 country letters,
// 2 alphanumerics. Cosmetic only, no checksum.
func swiftBIC(r *rand.Rand) string {
	return randFrom(r, upperLetters, 4) + choice(r, bicCountries) + randFrom(r, upperAlnum, 2)
}

// maskedIBAN is a mask-like stand-in, not a real IBAN.
func maskedIBAN(r *rand.Rand) string {
	return "****" + randFrom(r, upperAlnum, 10)
}

// shortID returns the first n characters of a fresh UUID.
func shortID(n int) string {
	return uuid.New().String()[:n]
}
