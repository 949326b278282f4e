package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/myvehicles/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestParseTTL(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"1h", time.Hour},
		{"90m", 90 * time.Minute},
		{"3600", time.Hour},
		{" 60 ", time.Minute},
		{"7d", 7 * 24 * time.Hour},
		{"1.5d", 36 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := jwtx.ParseTTL(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseTTL_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "xd", "0", "-5", "-1h"} {
		t.Run(in, func(t *testing.T) {
			_, err := jwtx.ParseTTL(in)
			require.ErrorIs(t, err, jwtx.ErrInvalidTTL)
		})
	}
}
