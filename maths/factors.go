package maths

import "math"

// FindPrimeFactors finds the prime factors of an integer, returned as a map
// from unique factor to its power: exponentiating every key by its value and
// taking the product of the results reconstructs the input. A negative input
// contributes a factor of -1 with power 1 and is otherwise factorised as its
// absolute value.
//
// Factor 2 is divided out first, then only odd divisors are tested against
// the shrinking quotient: a composite odd divisor can never divide the
// quotient, because its own prime factors have already been divided out by
// the time it comes up. A prime left over at the end is recorded as its own
// factor, so a prime input yields just itself with power 1. Inputs of 0 or 1
// have no prime factorisation and map to themselves with power 1.
func FindPrimeFactors(integer int) map[int]int {
	primeFactors := make(map[int]int)

	if integer < 0 {
		primeFactors[-1] = 1
		integer = -integer
	}

	for integer > 1 && integer%2 == 0 {
		primeFactors[2]++
		integer /= 2
	}

	for divisor := 3; divisor*divisor <= integer; divisor += 2 {
		for integer%divisor == 0 {
			primeFactors[divisor]++
			integer /= divisor
		}
	}

	if integer > 1 {
		primeFactors[integer]++
	}

	if len(primeFactors) == 0 {
		primeFactors[integer] = 1
	}

	return primeFactors
}

// FindCommonPrimeFactors finds all prime factors two integers have in common:
// the intersection of their factorisations' keys, each at the smaller of its
// two powers.
func FindCommonPrimeFactors(int1, int2 int) map[int]int {
	factors1 := FindPrimeFactors(int1)
	factors2 := FindPrimeFactors(int2)

	commonFactors := make(map[int]int)
	for factor, power1 := range factors1 {
		if power2, ok := factors2[factor]; ok {
			commonFactors[factor] = min(power1, power2)
		}
	}
	return commonFactors
}

// FindGreatestCommonFactor returns the greatest common factor of two
// integers: the product of factor^power over their common prime factors.
func FindGreatestCommonFactor(int1, int2 int) int {
	product := 1
	for factor, power := range FindCommonPrimeFactors(int1, int2) {
		for range power {
			product *= factor
		}
	}
	return product
}

// SimplifyFraction reduces an arbitrarily-valued fraction to integer
// numerator and denominator with no common factor. The final return is false
// for a zero denominator; a zero numerator simplifies to 0/1. Non-integer
// inputs are first scaled up by repeated doubling until both parts are whole,
// so extremely small fractional parts can take many doublings or overflow the
// integer range. That is an accepted limitation of the scaling approach.
func SimplifyFraction(numerator, denominator float64) (int, int, bool) {
	if denominator == 0 {
		return 0, 0, false
	}
	if numerator == 0 {
		return 0, 1, true
	}

	for math.Trunc(numerator) != numerator || math.Trunc(denominator) != denominator {
		numerator *= 2
		denominator *= 2
	}

	commonFactor := FindGreatestCommonFactor(int(numerator), int(denominator))
	return int(numerator) / commonFactor, int(denominator) / commonFactor, true
}
