package mdevent

// TokenKind classifies the span a pair of Enter/Exit events bounds.
type TokenKind uint16

// Token kinds for every construct the engine produces.
const (
	// TokData is a leaf run of arbitrary characters. Data spans may carry a
	// content-type link and are re-parsed by the subtokenizer.
	TokData TokenKind = iota

	TokSpaceOrTab
	TokLineEnding

	// TokBlankLineEnding marks the line ending of a line that holds nothing
	// but whitespace. The document engine anchors container closures to it.
	TokBlankLineEnding

	// TokHardBreakTrailing is a run of two or more trailing spaces before a
	// line ending, reclassified by the whitespace resolver.
	TokHardBreakTrailing

	TokByteOrderMark

	TokParagraph

	TokHeadingAtx
	TokHeadingAtxSequence
	TokHeadingAtxText

	TokThematicBreak
	TokThematicBreakSequence

	TokBlockQuote
	TokBlockQuotePrefix
	TokBlockQuoteMarker

	TokListItem
	TokListItemPrefix
	TokListItemMarker
	TokListItemValue

	TokCodeFenced
	TokCodeFencedFence
	TokCodeFencedFenceSequence
	TokCodeFencedFenceInfo
	TokCodeFencedFenceMeta
	TokCodeFlowChunk

	TokDefinition
	TokDefinitionLabel
	TokDefinitionLabelMarker

	// TokDefinitionLabelString holds the raw label of a definition; its Exit
	// events feed the discovered-identifier scan.
	TokDefinitionLabelString

	TokDefinitionMarker
	TokDefinitionDestination
	TokDefinitionTitle
)

var tokenKindNames = map[TokenKind]string{
	TokData:                    "Data",
	TokSpaceOrTab:              "SpaceOrTab",
	TokLineEnding:              "LineEnding",
	TokBlankLineEnding:         "BlankLineEnding",
	TokHardBreakTrailing:       "HardBreakTrailing",
	TokByteOrderMark:           "ByteOrderMark",
	TokParagraph:               "Paragraph",
	TokHeadingAtx:              "HeadingAtx",
	TokHeadingAtxSequence:      "HeadingAtxSequence",
	TokHeadingAtxText:          "HeadingAtxText",
	TokThematicBreak:           "ThematicBreak",
	TokThematicBreakSequence:   "ThematicBreakSequence",
	TokBlockQuote:              "BlockQuote",
	TokBlockQuotePrefix:        "BlockQuotePrefix",
	TokBlockQuoteMarker:        "BlockQuoteMarker",
	TokListItem:                "ListItem",
	TokListItemPrefix:          "ListItemPrefix",
	TokListItemMarker:          "ListItemMarker",
	TokListItemValue:           "ListItemValue",
	TokCodeFenced:              "CodeFenced",
	TokCodeFencedFence:         "CodeFencedFence",
	TokCodeFencedFenceSequence: "CodeFencedFenceSequence",
	TokCodeFencedFenceInfo:     "CodeFencedFenceInfo",
	TokCodeFencedFenceMeta:     "CodeFencedFenceMeta",
	TokCodeFlowChunk:           "CodeFlowChunk",
	TokDefinition:              "Definition",
	TokDefinitionLabel:         "DefinitionLabel",
	TokDefinitionLabelMarker:   "DefinitionLabelMarker",
	TokDefinitionLabelString:   "DefinitionLabelString",
	TokDefinitionMarker:        "DefinitionMarker",
	TokDefinitionDestination:   "DefinitionDestination",
	TokDefinitionTitle:         "DefinitionTitle",
}

// String returns the kind's name for diagnostics and rendered output.
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}
