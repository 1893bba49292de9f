package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSlices(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"2,2", []int{2, 2}},
		{"1, 3 ,2", []int{1, 3, 2}},
		{"4", []int{4}},
		{"2,,2", []int{2, 2}},
	}
	for _, tc := range cases {
		got, err := parseSlices(tc.in)
		require.NoError(t, err, "parseSlices(%q)", tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestParseSlices_Errors(t *testing.T) {
	for _, in := range []string{"", ",", "a,b", "2,x"} {
		_, err := parseSlices(in)
		require.Error(t, err, "parseSlices(%q)", in)
	}
}
