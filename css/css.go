// Package css validates style values which reach us as free-form text: the
// theme color from the document and the optional stylesheet override for the
// HTML preview. Everything else about styling is generated, never parsed.
package css

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// NormalizeHexColor parses a CSS hex color ("#RGB" or "#RRGGBB", any case)
// and returns it as upper case "RRGGBB" without the hash. Anything else is
// rejected.
func NormalizeHexColor(value string) (string, error) {
	l := css.NewLexer(parse.NewInput(bytes.NewReader([]byte(strings.TrimSpace(value)))))

	var hash string
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if l.Err() != io.EOF {
				return "", fmt.Errorf("invalid color value '%s': %w", value, l.Err())
			}
			if hash == "" {
				return "", fmt.Errorf("invalid color value '%s': not a hex color", value)
			}
			return expandHex(hash, value)
		case css.HashToken:
			if hash != "" {
				return "", fmt.Errorf("invalid color value '%s': multiple tokens", value)
			}
			hash = string(data[1:])
		case css.WhitespaceToken:
		default:
			return "", fmt.Errorf("invalid color value '%s': unexpected token", value)
		}
	}
}

func expandHex(hex, original string) (string, error) {
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", fmt.Errorf("invalid color value '%s': not a hex color", original)
		}
	}
	switch len(hex) {
	case 3:
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		return strings.ToUpper(sb.String()), nil
	case 6:
		return strings.ToUpper(hex), nil
	default:
		return "", fmt.Errorf("invalid color value '%s': expected 3 or 6 hex digits", original)
	}
}

// ValidateOverride checks that a user supplied stylesheet override parses and
// carries no external references. The override is embedded into the preview
// verbatim, so we only gate it, we do not rewrite it.
func ValidateOverride(data []byte, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	p := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	rules := 0
	for {
		gt, _, tok := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() != io.EOF {
				return fmt.Errorf("stylesheet override does not parse: %w", p.Err())
			}
			log.Debug("Stylesheet override accepted", zap.Int("rules", rules))
			return nil
		case css.AtRuleGrammar, css.BeginAtRuleGrammar:
			name := strings.ToLower(string(tok))
			if name == "@import" {
				return fmt.Errorf("stylesheet override must not use @import")
			}
		case css.BeginRulesetGrammar:
			rules++
		}
	}
}
