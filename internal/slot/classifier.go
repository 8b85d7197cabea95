package slot

import (
	"context"
	"sort"
	"strings"

	"estimate-srv/internal/embedding"
	"estimate-srv/internal/model"
	"estimate-srv/pkg/log"
)

// DefaultFuzzyThreshold is the cosine similarity cutoff for fuzzy matching.
const DefaultFuzzyThreshold = 0.5

// Classifier decides which outstanding slot an utterance most likely fills.
//
//go:generate mockery --name Classifier
type Classifier interface {
	IsLikelyDeliverable(text string) bool
	IsLikelyTopic(text string) bool
	// ExtractDeliverables collects every deliverable vocabulary entry present
	// in text, de-duplicated, sorted, comma-joined. Empty when none match.
	ExtractDeliverables(text string) string
	// ExtractTopic returns the first topic vocabulary entry present in text.
	ExtractTopic(text string) string
	// FuzzyMatch approximates against the vocabulary for kind via embedding
	// similarity. Returns the best entry, or "" when nothing clears the
	// threshold or the embedding collaborator fails.
	FuzzyMatch(ctx context.Context, text string, kind model.SlotKind) string
}

type implClassifier struct {
	embeddingUC embedding.UseCase
	threshold   float64
	l           log.Logger
}

// New creates a Classifier. A non-positive threshold falls back to the default.
func New(embeddingUC embedding.UseCase, threshold float64, l log.Logger) Classifier {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &implClassifier{
		embeddingUC: embeddingUC,
		threshold:   threshold,
		l:           l,
	}
}

// fold lowercases and strips whitespace so compound utterances still hit
// vocabulary entries.
func fold(text string) string {
	return strings.ReplaceAll(strings.ToLower(text), " ", "")
}

func (c *implClassifier) IsLikelyDeliverable(text string) bool {
	folded := fold(text)
	for _, entry := range deliverableVocab {
		if strings.Contains(folded, entry) {
			return true
		}
	}
	return false
}

func (c *implClassifier) IsLikelyTopic(text string) bool {
	folded := fold(text)
	for _, entry := range topicVocab {
		if strings.Contains(folded, entry) {
			return true
		}
	}
	return false
}

func (c *implClassifier) ExtractDeliverables(text string) string {
	folded := fold(text)
	seen := make(map[string]bool)
	var matched []string
	for _, entry := range deliverableVocab {
		if seen[entry] || !strings.Contains(folded, entry) {
			continue
		}
		seen[entry] = true
		matched = append(matched, entry)
	}
	if len(matched) == 0 {
		return ""
	}
	sort.Strings(matched)
	return strings.Join(matched, ",")
}

func (c *implClassifier) ExtractTopic(text string) string {
	folded := fold(text)
	for _, entry := range topicVocab {
		if strings.Contains(folded, entry) {
			return entry
		}
	}
	return ""
}

func (c *implClassifier) FuzzyMatch(ctx context.Context, text string, kind model.SlotKind) string {
	var vocab []string
	switch kind {
	case model.SlotDeliverable:
		vocab = deliverableVocab
	case model.SlotTopic:
		vocab = topicVocab
	default:
		return ""
	}

	queryOut, err := c.embeddingUC.Generate(ctx, embedding.GenerateInput{Text: text})
	if err != nil {
		c.l.Warnf(ctx, "slot.classifier.FuzzyMatch: embed query failed: %v", err)
		return ""
	}

	vocabOut, err := c.embeddingUC.GenerateMany(ctx, embedding.GenerateManyInput{Texts: vocab})
	if err != nil {
		c.l.Warnf(ctx, "slot.classifier.FuzzyMatch: embed vocabulary failed: %v", err)
		return ""
	}

	best := ""
	bestScore := c.threshold
	for i, vec := range vocabOut.Vectors {
		score := embedding.CosineSimilarity(queryOut.Vector, vec)
		if score >= bestScore {
			best = vocab[i]
			bestScore = score
		}
	}
	return best
}
