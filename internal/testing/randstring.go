// Package testing holds helpers shared by package tests
package testing

import (
	"math/rand"
	"strings"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandString generates random string with 10 symbols length from lower- and uppercase alphabet,
// used for unique usernames and chat names
func RandString() string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RandEmail generates random address in example.com domain
func RandEmail() string {
	return strings.ToLower(RandString()) + "@example.com"
}
