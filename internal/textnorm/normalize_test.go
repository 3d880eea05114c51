package textnorm

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Clean(t *testing.T) {
	normalizer, err := New()
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "lowercases and strips punctuation",
			text: "They CHARGED a fee!!!",
			want: "charge fee",
		},
		{
			name: "removes stopwords",
			text: "this is my account and it is not the bank",
			want: "account bank",
		},
		{
			name: "lemmatizes plurals",
			text: "fees charges accounts",
			want: "fee charge account",
		},
		{
			name: "keeps digits",
			text: "refund of 300 dollars",
			want: "refund 300 dollar",
		},
		{
			name: "masked identifiers survive",
			text: "XXXX charged me a fee twice",
			want: "xxxx charge fee twice",
		},
		{
			name: "collapses whitespace",
			text: "late   fee \n\t late  fee",
			want: "late fee late fee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizer.Clean(tt.text))
		})
	}
}

func TestNormalizer_CleanOutputIsPure(t *testing.T) {
	normalizer, err := New()
	require.NoError(t, err)

	inputs := []string{
		"XXXX charged me a fee twice",
		"I was DOUBLE-billed on 01/02/2023; disputed & re-billed!?",
		"Calls at 8am, 9am, and 10am... every single day.",
	}

	for _, input := range inputs {
		cleaned := normalizer.Clean(input)

		for _, r := range cleaned {
			if r == ' ' {
				continue
			}
			assert.False(t, unicode.IsUpper(r), "uppercase rune %q in %q", r, cleaned)
			assert.False(t, unicode.IsPunct(r), "punctuation rune %q in %q", r, cleaned)
		}

		for _, token := range strings.Fields(cleaned) {
			assert.False(t, IsStopword(token), "stopword %q survived in %q", token, cleaned)
		}
	}
}

func TestNormalizer_CleanAll(t *testing.T) {
	normalizer, err := New()
	require.NoError(t, err)

	texts := []string{"The FEES!", "my accounts"}
	calls := 0
	normalizer.CleanAll(texts, func() { calls++ })

	assert.Equal(t, []string{"fee", "account"}, texts)
	assert.Equal(t, 2, calls)
}
