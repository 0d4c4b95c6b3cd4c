package opener

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenPassesHTTPLinks(t *testing.T) {
	var got []string
	b := &Browser{open: func(u string) error {
		got = append(got, u)
		return nil
	}}

	require.NoError(t, b.Open("https://www.wandergoal.fr/"))
	require.NoError(t, b.Open("http://localhost:3000/"))
	require.Equal(t, []string{"https://www.wandergoal.fr/", "http://localhost:3000/"}, got)
}

func TestOpenRejectsOtherSchemes(t *testing.T) {
	called := false
	b := &Browser{open: func(string) error {
		called = true
		return nil
	}}

	require.Error(t, b.Open("file:///etc/passwd"))
	require.Error(t, b.Open("javascript:alert(1)"))
	require.Error(t, b.Open("://bad"))
	require.False(t, called)
}

func TestOpenWrapsLaunchError(t *testing.T) {
	boom := errors.New("no browser")
	b := &Browser{open: func(string) error { return boom }}
	require.ErrorIs(t, b.Open("https://wanderalert.vercel.app/"), boom)
}
