package types

import (
	"fmt"
	"regexp"
	"strings"
)

// SocialNetwork is one profile link in the CV header.
type SocialNetwork struct {
	Network  string `yaml:"network" json:"network" validate:"required"`
	Username string `yaml:"username" json:"username" validate:"required"`
}

type networkSpec struct {
	baseURL         string
	usernamePattern *regexp.Regexp
	message         string
}

var networkSpecs = map[string]networkSpec{
	"GitHub":        {baseURL: "https://github.com/"},
	"GitLab":        {baseURL: "https://gitlab.com/"},
	"LinkedIn":      {baseURL: "https://linkedin.com/in/"},
	"Instagram":     {baseURL: "https://instagram.com/"},
	"X":             {baseURL: "https://x.com/"},
	"ResearchGate":  {baseURL: "https://researchgate.net/profile/"},
	"GoogleScholar": {baseURL: "https://scholar.google.com/citations?user="},
	"Telegram":      {baseURL: "https://t.me/"},
	"Leetcode":      {baseURL: "https://leetcode.com/"},
	"Mastodon": {
		baseURL:         "https://",
		usernamePattern: regexp.MustCompile(`^@[\w.-]+@[\w.-]+\.\w+$`),
		message:         "Mastodon username must be in the @username@domain format",
	},
	"StackOverflow": {
		baseURL:         "https://stackoverflow.com/users/",
		usernamePattern: regexp.MustCompile(`^\d+/[\w.-]+$`),
		message:         "StackOverflow username must be in the id/username format",
	},
	"ORCID": {
		baseURL:         "https://orcid.org/",
		usernamePattern: regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`),
		message:         "ORCID must be in the XXXX-XXXX-XXXX-XXXX format",
	},
	"IMDB": {
		baseURL:         "https://imdb.com/name/",
		usernamePattern: regexp.MustCompile(`^nm\d{7,8}$`),
		message:         "IMDB profile must be in the nmXXXXXXX format",
	},
	"YouTube": {baseURL: "https://youtube.com/@"},
}

// NetworkNames returns the closed set of accepted social networks.
func NetworkNames() []string {
	names := make([]string, 0, len(networkSpecs))
	for name := range networkSpecs {
		names = append(names, name)
	}
	return names
}

// Validate checks the network against the closed enum and the username
// against the per-network format rules.
func (s *SocialNetwork) Validate() []FieldIssue {
	spec, ok := networkSpecs[s.Network]
	if !ok {
		return []FieldIssue{{
			Field:   "network",
			Message: fmt.Sprintf("%q is not a supported social network", s.Network),
			Input:   s.Network,
		}}
	}
	if s.Network == "YouTube" && strings.HasPrefix(s.Username, "@") {
		return []FieldIssue{{
			Field:   "username",
			Message: "YouTube usernames are given without the leading @",
			Input:   s.Username,
		}}
	}
	if spec.usernamePattern != nil && !spec.usernamePattern.MatchString(s.Username) {
		return []FieldIssue{{Field: "username", Message: spec.message, Input: s.Username}}
	}
	return nil
}

// URL composes the profile link for the network.
func (s *SocialNetwork) URL() string {
	spec, ok := networkSpecs[s.Network]
	if !ok {
		return ""
	}
	if s.Network == "Mastodon" {
		// @user@domain becomes https://domain/@user
		parts := strings.Split(strings.TrimPrefix(s.Username, "@"), "@")
		if len(parts) == 2 {
			return "https://" + parts[1] + "/@" + parts[0]
		}
		return ""
	}
	return spec.baseURL + s.Username
}
