package validation

import (
	"fmt"
	"strings"
)

// infrastructural path elements that carry no meaning for the user.
var droppedPathElements = map[string]bool{
	"tagged-union":    true,
	"list":            true,
	"literal":         true,
	"int":             true,
	"constrained-str": true,
	"function-after":  true,
	"entries":         true,
}

func cleanPath(elements []string) []string {
	out := make([]string, 0, len(elements))
	for _, el := range elements {
		if el == "" || droppedPathElements[el] {
			continue
		}
		out = append(out, el)
	}
	return out
}

// messageCatalog rewrites library wording into messages a CV author can act
// on. Keys match the start of the raw message.
var messageCatalog = map[string]string{
	"value is not a valid email address": "This is not a valid email address!",
	"Input should be a valid integer":    "This is not a valid integer!",
	"Input should be a valid number":     "This is not a valid number!",
	"Input should be a valid string":     "This is not a valid string!",
	"Input should be a valid list":       "This is not a valid list!",
	"URL scheme should be":               "This is not a valid URL!",
	"Input should be a valid URL":        "This is not a valid URL!",
}

func curateMessage(path, message string) string {
	message = strings.TrimPrefix(message, "Value error, ")
	for prefix, replacement := range messageCatalog {
		if strings.HasPrefix(message, prefix) {
			message = replacement
			break
		}
	}
	if strings.HasSuffix(path, ".end_date") && strings.Contains(message, "not a valid date") {
		message = "This is not a valid end date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format or \"present\"!"
	}
	return message
}

// shortenInput keeps scalar inputs verbatim and elides composites, which
// would otherwise flood the error table.
func shortenInput(input any) any {
	switch input.(type) {
	case nil:
		return nil
	case string, bool, int, int64, float64:
		return input
	}
	return "..."
}

func dedupRecords(records []ValidationRecord) []ValidationRecord {
	seen := map[string]bool{}
	out := make([]ValidationRecord, 0, len(records))
	for _, rec := range records {
		key := strings.Join(rec.SchemaLocation, ".") + "\x00" + rec.Message + "\x00" + fmt.Sprint(rec.Input)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}
	return out
}
