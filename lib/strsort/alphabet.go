package strsort

import (
	"errors"
	mathbits "math/bits"
)

var (
	ErrDuplicateChar     = errors.New("[strsort] alphabet contains a duplicate character")
	ErrCharNotInAlphabet = errors.New("[strsort] character not in alphabet")
)

// Alphabet maps a fixed character set onto the compact indices
// 0..R-1, the radix used by the string sorts below.
type Alphabet struct {
	chars   []byte
	indices [256]int16 // -1 marks absence
}

func NewAlphabet(chars string) (*Alphabet, error) {
	a := &Alphabet{chars: []byte(chars)}
	for i := range a.indices {
		a.indices[i] = -1
	}
	for i := 0; i < len(chars); i++ {
		if a.indices[chars[i]] >= 0 {
			return nil, ErrDuplicateChar
		}
		a.indices[chars[i]] = int16(i)
	}
	return a, nil
}

func mustAlphabet(chars string) *Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// Built-in alphabets.
var (
	BinaryAlphabet      = mustAlphabet("01")
	DNAAlphabet         = mustAlphabet("ACGT")
	OctalAlphabet       = mustAlphabet("01234567")
	DecimalAlphabet     = mustAlphabet("0123456789")
	HexadecimalAlphabet = mustAlphabet("0123456789ABCDEF")
	LowercaseAlphabet   = mustAlphabet("abcdefghijklmnopqrstuvwxyz")
	UppercaseAlphabet   = mustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	Base64Alphabet      = mustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
)

// R returns the radix, the number of characters in the alphabet.
func (a *Alphabet) R() int {
	return len(a.chars)
}

// LgR returns the bits needed to represent an index, ceil(log2 R).
func (a *Alphabet) LgR() int {
	return mathbits.Len(uint(len(a.chars) - 1))
}

func (a *Alphabet) Contains(c byte) bool {
	return a.indices[c] >= 0
}

// ToIndex converts a character to its 0..R-1 index.
func (a *Alphabet) ToIndex(c byte) (int, error) {
	if !a.Contains(c) {
		return 0, ErrCharNotInAlphabet
	}
	return int(a.indices[c]), nil
}

// ToChar converts an index back to its character.
func (a *Alphabet) ToChar(index int) (byte, error) {
	if index < 0 || index >= len(a.chars) {
		return 0, ErrCharNotInAlphabet
	}
	return a.chars[index], nil
}

// ToIndices converts a string over the alphabet to its index slice.
func (a *Alphabet) ToIndices(s string) ([]int, error) {
	indices := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		idx, err := a.ToIndex(s[i])
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}

// ToChars converts an index slice back to a string.
func (a *Alphabet) ToChars(indices []int) (string, error) {
	chars := make([]byte, len(indices))
	for i, idx := range indices {
		c, err := a.ToChar(idx)
		if err != nil {
			return "", err
		}
		chars[i] = c
	}
	return string(chars), nil
}
