package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialNetwork_URLs(t *testing.T) {
	cases := []struct {
		network  string
		username string
		want     string
	}{
		{"GitHub", "johndoe", "https://github.com/johndoe"},
		{"LinkedIn", "john-doe", "https://linkedin.com/in/john-doe"},
		{"StackOverflow", "12345/john", "https://stackoverflow.com/users/12345/john"},
		{"Mastodon", "@john@fosstodon.org", "https://fosstodon.org/@john"},
		{"YouTube", "johndoe", "https://youtube.com/@johndoe"},
		{"ORCID", "0000-0002-1825-0097", "https://orcid.org/0000-0002-1825-0097"},
	}
	for _, tc := range cases {
		s := &SocialNetwork{Network: tc.network, Username: tc.username}
		assert.Equal(t, tc.want, s.URL(), tc.network)
	}
}

func TestSocialNetwork_ValidUsernames(t *testing.T) {
	cases := []SocialNetwork{
		{Network: "GitHub", Username: "johndoe"},
		{Network: "Mastodon", Username: "@john@fosstodon.org"},
		{Network: "ORCID", Username: "0000-0002-1825-009X"},
		{Network: "IMDB", Username: "nm0000001"},
	}
	for _, s := range cases {
		assert.Empty(t, s.Validate(), s.Network)
	}
}

func TestSocialNetwork_InvalidUsernames(t *testing.T) {
	cases := []SocialNetwork{
		{Network: "Mastodon", Username: "john"},
		{Network: "StackOverflow", Username: "john"},
		{Network: "ORCID", Username: "1234"},
		{Network: "YouTube", Username: "@johndoe"},
		{Network: "IMDB", Username: "0000001"},
	}
	for _, s := range cases {
		issues := s.Validate()
		require.NotEmpty(t, issues, s.Network)
		assert.Equal(t, "username", issues[0].Field)
	}
}

func TestSocialNetwork_UnknownNetwork(t *testing.T) {
	s := &SocialNetwork{Network: "MySpace", Username: "john"}
	issues := s.Validate()
	require.Len(t, issues, 1)
	assert.Equal(t, "network", issues[0].Field)
}
