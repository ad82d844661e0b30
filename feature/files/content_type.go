package files

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultContentType applies to any filename without a known suffix.
const DefaultContentType = "text/plain"

// contentTypes is the fixed suffix table. Matching is exact and case-sensitive:
// "a.JSON" is text/plain.
var contentTypes = []struct {
	suffix      string
	contentType string
}{
	{".json", "application/json"},
	{".html", "text/html"},
	{".csv", "text/csv"},
}

// ContentTypeFor infers a MIME type from the filename suffix alone.
func ContentTypeFor(filename string) string {
	for _, ct := range contentTypes {
		if strings.HasSuffix(filename, ct.suffix) {
			return ct.contentType
		}
	}
	return DefaultContentType
}

// DecodeText returns data as a string when it is valid UTF-8, and a
// "[Binary file, N bytes]" placeholder otherwise.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return fmt.Sprintf("[Binary file, %d bytes]", len(data))
}
