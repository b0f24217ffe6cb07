package leads

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap/zapcore"
)

// Digest renders leads as a standalone HTML document for operators.
func Digest(leads []Lead, generatedAt time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>Lead digest</title></head><body>\n")
		fmt.Fprintf(&b, "<h1>Lead digest</h1>\n<p>%d submissions, generated %s</p>\n",
			len(leads), templ.EscapeString(generatedAt.UTC().Format(time.RFC3339)))
		for _, lead := range leads {
			if err := ctx.Err(); err != nil {
				return err
			}
			writeLead(&b, lead)
		}
		b.WriteString("</body></html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeLead(b *strings.Builder, lead Lead) {
	fmt.Fprintf(b, "<section id=\"lead-%s\">\n<h2>%s</h2>\n<p>%s &middot; %s</p>\n<dl>\n",
		templ.EscapeString(lead.ID),
		templ.EscapeString(string(lead.Kind)),
		templ.EscapeString(lead.ID),
		templ.EscapeString(lead.CreatedAt.UTC().Format(time.RFC3339)),
	)
	for _, field := range Fields(lead.Form) {
		fmt.Fprintf(b, "<dt>%s</dt><dd>%s</dd>\n", templ.EscapeString(field.Name), templ.EscapeString(field.Value))
	}
	b.WriteString("</dl>\n</section>\n")
}

// Field is one named form value as shown to operators.
type Field struct {
	Name  string
	Value string
}

// Fields flattens a form through its log encoding so every kind renders
// the same fields it logs, sorted by name.
func Fields(form Form) []Field {
	if form == nil {
		return nil
	}
	enc := zapcore.NewMapObjectEncoder()
	if err := form.MarshalLogObject(enc); err != nil {
		return []Field{{Name: "error", Value: err.Error()}}
	}
	names := make([]string, 0, len(enc.Fields))
	for name := range enc.Fields {
		names = append(names, name)
	}
	slices.Sort(names)
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Value: formatValue(enc.Fields[name])})
	}
	return fields
}

func formatValue(value any) string {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+": "+formatValue(v[key]))
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(v)
	}
}
