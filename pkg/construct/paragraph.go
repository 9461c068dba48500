package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// ParagraphStart begins a paragraph. The current character must be real
// content; blank lines are filtered out before flow ever tries a paragraph.
func ParagraphStart(t *tokenizer.Tokenizer) tokenizer.State {
	t.Enter(mdevent.TokParagraph)
	t.EnterWithContent(mdevent.TokData, mdevent.ContentText)
	return paragraphInside(t)
}

func paragraphInside(t *tokenizer.Tokenizer) tokenizer.State {
	if isEOF(t.Current) || isLineEnding(t.Current) {
		t.Exit(mdevent.TokData)
		t.Exit(mdevent.TokParagraph)
		t.RegisterResolverBefore("paragraph", resolveParagraph)
		// The next flow construct would be interrupting this paragraph.
		t.Interrupt = true
		return tokenizer.Ok
	}
	t.Consume()
	return tokenizer.Next(paragraphInside)
}

// resolveParagraph merges adjacent paragraphs, which arise when a line
// opens a new paragraph that in hindsight continues the previous one (lazy
// container lines). The text chunks of the merged lines are chained so that
// subtokenization sees them as one region.
func resolveParagraph(t *tokenizer.Tokenizer) {
	index := 0
	for index < len(t.Events) {
		e := t.Events[index]
		if e.Kind == mdevent.Enter && e.Token == mdevent.TokParagraph {
			// Exit:Paragraph of this line.
			exitIndex := index + 3

			for {
				enterIndex := exitIndex + 1
				if enterIndex >= len(t.Events) ||
					t.Events[enterIndex].Token != mdevent.TokLineEnding {
					break
				}
				enterIndex += 2

				for enterIndex < len(t.Events) {
					k := t.Events[enterIndex].Token
					if k != mdevent.TokSpaceOrTab &&
						k != mdevent.TokBlockQuotePrefix &&
						k != mdevent.TokBlockQuoteMarker {
						break
					}
					enterIndex++
				}

				if enterIndex >= len(t.Events) ||
					t.Events[enterIndex].Token != mdevent.TokParagraph {
					break
				}

				// Remove Exit:Paragraph, Enter:LineEnding, Exit:LineEnding.
				t.Map.Add(exitIndex, 3, nil)
				// Remove the following Enter:Paragraph.
				t.Map.Add(enterIndex, 1, nil)

				// Stretch Exit:Data over the swallowed line ending.
				t.Events[exitIndex-1].Point = t.Events[exitIndex+2].Point

				// Chain the Data chunks of the two lines.
				if link := t.Events[exitIndex-2].Link; link != nil {
					link.Next = enterIndex + 1
				}
				if link := t.Events[enterIndex+1].Link; link != nil {
					link.Previous = exitIndex - 2
				}

				exitIndex = enterIndex + 3
			}

			index = exitIndex
		}
		index++
	}
}
