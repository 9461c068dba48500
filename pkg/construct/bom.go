package construct

import (
	"github.com/yaklabco/mdtoken/pkg/mdevent"
	"github.com/yaklabco/mdtoken/pkg/tokenizer"
)

// ByteOrderMark matches a byte order mark at the very start of the stream.
func ByteOrderMark(t *tokenizer.Tokenizer) tokenizer.State {
	if t.Current != '\uFEFF' {
		return tokenizer.Nok
	}
	t.Enter(mdevent.TokByteOrderMark)
	t.Consume()
	return tokenizer.Next(byteOrderMarkAfter)
}

func byteOrderMarkAfter(t *tokenizer.Tokenizer) tokenizer.State {
	t.Exit(mdevent.TokByteOrderMark)
	return tokenizer.Ok
}
