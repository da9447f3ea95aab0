package gen

import (
	"go/token"
	"strings"
)

// ToPascal converts a schema name to an exported Go identifier:
// "chat_id" becomes "ChatId", "chatTypePrivate" becomes
// "ChatTypePrivate". The conversion is mechanical; acronyms are not
// special-cased, so renderings stay predictable from the schema name
// alone.
func ToPascal(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// ToCamel converts a schema name to an unexported Go identifier:
// "chat_id" becomes "chatId". Names that collide with Go keywords get a
// trailing underscore.
func ToCamel(name string) string {
	p := ToPascal(name)
	if p == "" {
		return p
	}
	c := strings.ToLower(p[:1]) + p[1:]
	if token.IsKeyword(c) {
		return c + "_"
	}
	return c
}
