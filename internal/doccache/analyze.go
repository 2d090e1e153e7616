package doccache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/annotext/internal/analyze"
	"github.com/ppiankov/annotext/internal/llm"
	"github.com/ppiankov/annotext/internal/model"
)

// NewAnalyzeFunc builds the standard document analysis step: tokenize,
// segment sentences, and score sentiment. When scorer is non-nil,
// sentence sentiment comes from the LLM provider, with the lexicon as
// fallback on per-sentence failures.
func NewAnalyzeFunc(cfg model.AnalysisConfig, scorer *llm.Scorer) AnalyzeFunc {
	tokenizer := analyze.NewTokenAnalyzer()
	sentiment := analyze.NewSentimentAnalyzer(analyze.SentimentOptions{Normalize: cfg.NormalizeScore})

	return func(ctx context.Context, path, text string) (*model.AnalyzedDoc, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc := &model.AnalyzedDoc{
			Path:       path,
			Text:       text,
			Tokens:     tokenizer.Tokens(text),
			AnalyzedAt: time.Now().UTC(),
		}

		for _, s := range analyze.SplitSentences(text) {
			score := scoreSentence(ctx, scorer, sentiment, s)
			doc.Sentences = append(doc.Sentences, model.Sentence{Text: s, Sentiment: score})
		}

		if cfg.PerSentence && len(doc.Sentences) > 0 {
			var sum float64
			for _, s := range doc.Sentences {
				sum += s.Sentiment
			}
			doc.Sentiment = sum / float64(len(doc.Sentences))
		} else {
			doc.Sentiment = sentiment.Score(text)
		}

		return doc, nil
	}
}

func scoreSentence(ctx context.Context, scorer *llm.Scorer, lexicon *analyze.SentimentAnalyzer, sentence string) float64 {
	if scorer == nil {
		return lexicon.Score(sentence)
	}
	score, err := scorer.Score(ctx, sentence)
	if err != nil {
		// Provider hiccups degrade to the lexicon, not to a failed refresh.
		fmt.Fprintf(os.Stderr, "llm sentiment failed, using lexicon: %v\n", err)
		return lexicon.Score(sentence)
	}
	return score
}
