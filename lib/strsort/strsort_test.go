package strsort

import (
	"fmt"
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	require.Equal(t, 4, DNAAlphabet.R())
	require.True(t, DNAAlphabet.Contains('G'))
	require.False(t, DNAAlphabet.Contains('g'))

	idx, err := DNAAlphabet.ToIndex('T')
	require.NoError(t, err)
	require.Equal(t, 3, idx)
	_, err = DNAAlphabet.ToIndex('X')
	require.ErrorIs(t, err, ErrCharNotInAlphabet)

	c, err := DNAAlphabet.ToChar(1)
	require.NoError(t, err)
	require.Equal(t, byte('C'), c)
	_, err = DNAAlphabet.ToChar(4)
	require.ErrorIs(t, err, ErrCharNotInAlphabet)

	indices, err := DNAAlphabet.ToIndices("AACGAACGGTTTACCCCG")
	require.NoError(t, err)
	back, err := DNAAlphabet.ToChars(indices)
	require.NoError(t, err)
	require.Equal(t, "AACGAACGGTTTACCCCG", back)

	_, err = NewAlphabet("ABCA")
	require.ErrorIs(t, err, ErrDuplicateChar)

	require.Equal(t, 2, DNAAlphabet.LgR())
	require.Equal(t, 1, BinaryAlphabet.LgR())
	require.Equal(t, 6, Base64Alphabet.LgR())
}

func TestKeyIndexedCounting(t *testing.T) {
	type student struct {
		name    string
		section int
	}
	students := []student{
		{"Anderson", 2}, {"Brown", 3}, {"Davis", 3}, {"Garcia", 4},
		{"Harris", 1}, {"Jackson", 3}, {"Johnson", 4}, {"Jones", 3},
		{"Martin", 1}, {"Martinez", 2}, {"Miller", 2}, {"Moore", 1},
		{"Robinson", 2}, {"Smith", 4}, {"Taylor", 3}, {"Thomas", 4},
		{"Thompson", 4}, {"White", 2}, {"Williams", 3}, {"Wilson", 4},
	}
	require.NoError(t, KeyIndexedCounting(students, 5, func(s student) int { return s.section }))
	for i := 0; i+1 < len(students); i++ {
		require.LessOrEqual(t, students[i].section, students[i+1].section)
	}
	// stability within a section
	require.Equal(t, "Harris", students[0].name)
	require.Equal(t, "Martin", students[1].name)
	require.Equal(t, "Moore", students[2].name)

	require.ErrorIs(t,
		KeyIndexedCounting(students, 3, func(s student) int { return s.section }),
		ErrKeyOutOfRadix)
}

func TestLSD_LicensePlates(t *testing.T) {
	plates := []string{
		"4PGC938", "2IYE230", "3CIO720", "1ICK750", "1OHV845",
		"4JZY524", "1ICK750", "3CIO720", "1OHV845", "1OHV845",
		"2RLA629", "2RLA629", "3ATW723",
	}
	require.NoError(t, LSD(plates, 7))
	require.Equal(t, []string{
		"1ICK750", "1ICK750", "1OHV845", "1OHV845", "1OHV845",
		"2IYE230", "2RLA629", "2RLA629", "3ATW723", "3CIO720",
		"3CIO720", "4JZY524", "4PGC938",
	}, plates)
}

func TestLSD_RaggedInput(t *testing.T) {
	require.ErrorIs(t, LSD([]string{"ab", "abc"}, 2), ErrRaggedStrings)
}

func TestMSD_Shells(t *testing.T) {
	words := []string{
		"she", "sells", "seashells", "by", "the", "sea", "shore",
		"the", "shells", "she", "sells", "are", "surely", "seashells",
	}
	MSD(words)
	require.Equal(t, []string{
		"are", "by", "sea", "seashells", "seashells", "sells",
		"sells", "she", "she", "shells", "shore", "surely", "the",
		"the",
	}, words)
}

func TestMSD_EmptyAndSingle(t *testing.T) {
	MSD(nil)
	single := []string{"lonely"}
	MSD(single)
	require.Equal(t, []string{"lonely"}, single)
}

func TestStringSorts_RandomAgainstStdSort(t *testing.T) {
	const width = 6
	fixed := make([]string, 3000)
	variable := make([]string, 3000)
	for i := range fixed {
		fixed[i] = fmt.Sprintf("%06d", randv2.Uint64()%1000000)
		variable[i] = fixed[i][:1+randv2.Uint64()%width]
	}

	expectedFixed := append([]string(nil), fixed...)
	sort.Strings(expectedFixed)
	require.NoError(t, LSD(fixed, width))
	require.Equal(t, expectedFixed, fixed)

	expectedVariable := append([]string(nil), variable...)
	sort.Strings(expectedVariable)
	MSD(variable)
	require.Equal(t, expectedVariable, variable)
}
