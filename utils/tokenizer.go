package utils

import (
	"github.com/wbrown/gpt_bpe"
	"sync"
)

var gpt2Encoder gpt_bpe.GPTEncoder
var gpt2EncoderOnce sync.Once

func encoder() *gpt_bpe.GPTEncoder {
	gpt2EncoderOnce.Do(func() {
		gpt2Encoder = gpt_bpe.NewGPT2Encoder()
	})

	return &gpt2Encoder
}

// TruncateTokensGPT2 keeps at most maxTokens GPT-2 tokens of s. It is only
// an estimate of what the remote model sees, good enough to keep long pages
// from blowing up the context. maxTokens <= 0 means no limit.
func TruncateTokensGPT2(s string, maxTokens int) (string, bool) {
	if maxTokens <= 0 || len(s) <= maxTokens {
		// a token is at least one byte long
		return s, false
	}

	tokens := encoder().Encode(&s)
	if len(*tokens) <= maxTokens {
		return s, false
	}

	truncated := (*tokens)[:maxTokens]
	return encoder().Decode(&truncated), true
}
