package fixtures

import "github.com/Pallinder/go-randomdata"

// RandomInts returns a slice with a random length between [minLength, maxLength],
// filled with numbers between [-100, 100).
func RandomInts(minLength, maxLength int) []int {
	vs := make([]int, RandomLength(minLength, maxLength))
	for i := range vs {
		vs[i] = randomdata.Number(-100, 100)
	}
	return vs
}

// RandomLength returns a length between [minLength, maxLength].
func RandomLength(minLength, maxLength int) int {
	if maxLength <= minLength {
		return minLength
	}
	return randomdata.Number(minLength, maxLength+1)
}
