package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	// Register the custom listing style on package initialization
	_ = SmaliDark
}

// SmaliDark is a custom style for Dalvik disassembly listings.
var SmaliDark = styles.Register(chroma.MustNewStyle("smali-dark", chroma.StyleEntries{
	chroma.Text:       "#FFFFFF",    // default text white
	chroma.Background: "bg:#1e1e1e", // dark background
	chroma.Comment:    "#7A7A7A",    // gray comments

	chroma.Keyword:       "#FFFFFF", // mnemonics in white
	chroma.KeywordPseudo: "#FFFFFF",
	chroma.Name:          "#7C9C9D", // registers in teal
	chroma.NameBuiltin:   "#7C9C9D",
	chroma.NameVariable:  "#7C9C9D",

	chroma.LiteralNumber:        "#FF5F87", // literals in pink
	chroma.LiteralNumberHex:     "#FF5F87",
	chroma.LiteralNumberInteger: "#FF5F87",

	chroma.NameLabel:    "#FFD700", // branch targets in gold
	chroma.NameFunction: "#FFFFFF",
	chroma.NameClass:    "#EACD53", // type descriptors in golden

	chroma.Operator:    "#FFFFFF",
	chroma.Punctuation: "#FFFFFF",

	chroma.String: "#EACD53",
}))
