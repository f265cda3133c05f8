package summary

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// fallbackEncoding covers models tiktoken has no mapping for, such as the
// ollama-served ones.
const fallbackEncoding = "cl100k_base"

// charsPerToken is the rough ratio used when no encoding can be loaded.
const charsPerToken = 4

// encoders caches one encoding per model name. A nil entry records that no
// encoding could be loaded, so the lookup is not retried.
var encoders sync.Map

// countTokens is swapped out by tests; tiktoken fetches encodings over the
// network on first use.
var countTokens = tiktokenCount

// promptTokens reports how many tokens the model is likely to see for text.
func promptTokens(model, text string) int {
	return countTokens(model, text)
}

func tiktokenCount(model, text string) int {
	if enc := encoderFor(model); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return (len(text) + charsPerToken - 1) / charsPerToken
}

func encoderFor(model string) *tiktoken.Tiktoken {
	if cached, ok := encoders.Load(model); ok {
		return cached.(*tiktoken.Tiktoken)
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			enc = nil
		}
	}
	actual, _ := encoders.LoadOrStore(model, enc)
	return actual.(*tiktoken.Tiktoken)
}
