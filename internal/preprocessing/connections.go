package preprocessing

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/jonathan/rendercv/internal/types"
)

// Connection is one item of the header's contact row.
type Connection struct {
	Kind        string // icon name: location, email, phone, website, or a network
	Placeholder string // text shown to the reader
	URL         string // link target, empty for plain text
}

// BuildConnections assembles the header connections in the order the user
// wrote the CV fields, followed by the social networks.
func BuildConnections(cv *types.CV, locale *types.Locale) []Connection {
	var connections []Connection
	for _, key := range cv.KeyOrder {
		switch key {
		case "location":
			if cv.Location != "" {
				connections = append(connections, Connection{
					Kind:        "location",
					Placeholder: cv.Location,
				})
			}
		case "email":
			if cv.Email != "" {
				connections = append(connections, Connection{
					Kind:        "email",
					Placeholder: cv.Email,
					URL:         "mailto:" + cv.Email,
				})
			}
		case "phone":
			if cv.Phone != "" {
				connections = append(connections, Connection{
					Kind:        "phone",
					Placeholder: formatPhone(cv.Phone, locale.PhoneNumberFormat),
					URL:         "tel:" + strings.ReplaceAll(cv.Phone, " ", ""),
				})
			}
		case "website":
			if cv.Website != "" {
				connections = append(connections, Connection{
					Kind:        "website",
					Placeholder: types.CleanURL(cv.Website),
					URL:         cv.Website,
				})
			}
		}
	}
	for _, network := range cv.SocialNetworks {
		connections = append(connections, Connection{
			Kind:        iconName(network.Network),
			Placeholder: network.Username,
			URL:         network.URL(),
		})
	}
	return connections
}

// formatPhone renders a phone number per the locale's preference. Numbers
// that cannot be parsed pass through untouched.
func formatPhone(phone, format string) string {
	parsed, err := phonenumbers.Parse(phone, "")
	if err != nil {
		return phone
	}
	switch format {
	case "international":
		return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
	case "E164":
		return phonenumbers.Format(parsed, phonenumbers.E164)
	default:
		return phonenumbers.Format(parsed, phonenumbers.NATIONAL)
	}
}

func iconName(network string) string {
	name := strings.ToLower(network)
	name = strings.ReplaceAll(name, " ", "-")
	if name == "x" {
		return "x-twitter"
	}
	return name
}

// String renders the connection as a markdown link, or plain text when it has
// no target.
func (c Connection) String() string {
	if c.URL == "" {
		return c.Placeholder
	}
	return fmt.Sprintf("[%s](%s)", c.Placeholder, c.URL)
}
