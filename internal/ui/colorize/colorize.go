// Package colorize applies terminal syntax highlighting to smali-style
// disassembly listings. Set DEXSECT_NO_COLOR to disable all coloring.
package colorize

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// getSmaliLexer returns a lexer suited to Dalvik disassembly.
func getSmaliLexer() chroma.Lexer {
	candidates := []string{"smali", "Smali"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

// getListingStyle returns the listing style with fallbacks.
func getListingStyle() *chroma.Style {
	candidates := []string{"smali-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter.
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Listing highlights a whole multi-line disassembly listing.
func Listing(code string) (string, error) {
	if os.Getenv("DEXSECT_NO_COLOR") != "" {
		return code, nil
	}

	lexer := getSmaliLexer()
	if lexer == nil {
		return code, nil
	}

	style := getListingStyle()
	formatter := getTerminalFormatter()

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, err
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code, err
	}

	return buf.String(), nil
}

// Line colorizes a single listing line of the form
// "address  mnemonic operands", keeping the address in gray.
func Line(line string) string {
	if os.Getenv("DEXSECT_NO_COLOR") != "" {
		return line
	}

	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 || !isHexWord(parts[0]) {
		return colorizeFragment(line)
	}

	addr := fmt.Sprintf("\033[38;2;79;79;79m%s\033[0m", parts[0])
	return fmt.Sprintf("%s %s", addr, colorizeFragment(parts[1]))
}

func isHexWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexChar(s[i]) {
			return false
		}
	}
	return true
}

func isHexChar(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func colorizeFragment(s string) string {
	lexer := getSmaliLexer()
	if lexer == nil {
		return s
	}

	// make sure the custom style is registered
	_ = SmaliDark

	style := getListingStyle()
	formatter := getTerminalFormatter()

	iterator, err := lexer.Tokenise(nil, s)
	if err != nil {
		return s
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return s
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
