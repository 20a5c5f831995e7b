package persist

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MarshalMetadata encodes a metadata map as a JSON object.
// Values must be JSON-encodable; numbers round-trip as float64.
func MarshalMetadata(md map[string]any) ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	for k, v := range md {
		doc, err = sjson.SetBytes(doc, escapeKey(k), v)
		if err != nil {
			return nil, fmt.Errorf("encode metadata key %q: %w", k, err)
		}
	}
	return doc, nil
}

// UnmarshalMetadata decodes a JSON object into a metadata map.
// Returns false when the data is not a valid JSON object.
func UnmarshalMetadata(data []byte) (map[string]any, bool) {
	if !gjson.ValidBytes(data) {
		return nil, false
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, false
	}

	md := make(map[string]any)
	for k, v := range parsed.Map() {
		md[k] = v.Value()
	}
	return md, true
}

// pathEscaper guards metadata keys against sjson path syntax, which treats
// dots and wildcards as structure.
var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`:`, `\:`,
)

func escapeKey(key string) string {
	return pathEscaper.Replace(key)
}
