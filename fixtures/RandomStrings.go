package fixtures

import (
	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
)

// RandomNames returns n human readable names, duplicates are possible.
func RandomNames(n int) []string {
	vs := make([]string, n)
	for i := range vs {
		vs[i] = randomdata.SillyName()
	}
	return vs
}

// UniqueStrings returns n strings that are distinct from each other.
func UniqueStrings(n int) []string {
	vs := make([]string, n)
	for i := range vs {
		vs[i] = uuid.NewV4().String()
	}
	return vs
}
