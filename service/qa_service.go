package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// LLMClient is the text-completion boundary. The Q&A engine treats it as an
// opaque request/response service.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const qaSystemPrompt = `You are a helpful financial assistant.
Use ONLY the information in 'Document Metrics' to answer the user's question.
If the information is not present, say:
"I couldn't find the requested value in the uploaded documents."
Do not hallucinate additional facts.`

const fallbackAnswer = "I couldn't find the requested value in the uploaded documents."

// rawTextSnippetLen bounds how much raw document text is forwarded to the
// model per document.
const rawTextSnippetLen = 800

// historyWindow is how many trailing chat messages are included in the
// prompt (three exchanges).
const historyWindow = 6

// questionMetric maps question keywords to a metric key for the direct
// lookup path. "expenses" has no catalog counterpart and never resolves; it
// is kept so such questions fall through to the model instead of matching a
// wrong metric.
type questionMetric struct {
	key      dto.MetricKey
	keywords []string
}

var questionMetrics = []questionMetric{
	{dto.MetricRevenue, []string{"revenue", "sales"}},
	{dto.MetricNetIncome, []string{"net income", "net profit", "profit"}},
	{dto.MetricGrossProfit, []string{"gross profit"}},
	{dto.MetricEBITDA, []string{"ebitda"}},
	{dto.MetricTotalAssets, []string{"total assets", "assets"}},
	{dto.MetricTotalLiabilities, []string{"liabilities"}},
	{"expenses", []string{"expenses", "costs"}},
}

type QAService struct {
	llm   LLMClient
	store *DocumentStore
}

func NewQAService(llm LLMClient, store *DocumentStore) *QAService {
	return &QAService{llm: llm, store: store}
}

// Ask answers a question with a hybrid strategy: direct metric lookup first,
// then the language model with document context, then a fixed fallback when
// the model is unreachable. It never returns an error to the caller.
func (s *QAService) Ask(ctx context.Context, req *dto.ChatRequest) dto.ChatResponse {
	docs := s.store.List()

	if direct := s.lookupMetrics(req.Question, docs); direct != "" {
		return dto.ChatResponse{Answer: direct, Source: dto.AnswerSourceLookup}
	}

	prompt := buildPrompt(req, docs)
	answer, err := s.llm.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			log.Printf("LLM request failed: %v", err)
		}
		return dto.ChatResponse{Answer: fallbackAnswer, Source: dto.AnswerSourceFallback}
	}
	return dto.ChatResponse{Answer: strings.TrimSpace(answer), Source: dto.AnswerSourceLLM}
}

// lookupMetrics answers questions about common metrics straight from the
// stored records, without involving the model.
func (s *QAService) lookupMetrics(question string, docs []dto.DocumentContext) string {
	q := strings.ToLower(question)

	var answers []string
	for _, qm := range questionMetrics {
		matched := false
		for _, kw := range qm.keywords {
			if strings.Contains(q, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, doc := range docs {
			if v := doc.Structured.Metrics[qm.key]; v != nil {
				answers = append(answers, fmt.Sprintf("%s (from %s): %g",
					metricTitle(qm.key), doc.Name, *v))
			}
		}
	}
	return strings.Join(answers, "\n")
}

func metricTitle(key dto.MetricKey) string {
	words := strings.Split(string(key), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// buildPrompt assembles the system prompt, flattened document context, the
// trailing history window and the current question.
func buildPrompt(req *dto.ChatRequest, docs []dto.DocumentContext) string {
	var b strings.Builder
	b.WriteString(qaSystemPrompt)
	b.WriteString("\n\nDocument Metrics:\n")
	b.WriteString(buildContextString(docs))

	history := req.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	if len(history) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, msg := range history {
			role := "Assistant"
			if msg.Role == "user" {
				role = "User"
			}
			b.WriteString(role + ": " + msg.Content + "\n")
		}
	}

	b.WriteString("\nCurrent Question: " + req.Question + "\n")
	return b.String()
}

// buildContextString flattens stored documents into compact key: value lines
// for the model prompt.
func buildContextString(docs []dto.DocumentContext) string {
	var parts []string
	for _, doc := range docs {
		parts = append(parts, "Document: "+doc.Name)

		var metricLines []string
		for _, key := range dto.MetricKeys() {
			if v := doc.Structured.Metrics[key]; v != nil {
				metricLines = append(metricLines, fmt.Sprintf("- %s: %g", key, *v))
			}
		}
		if len(metricLines) > 0 {
			parts = append(parts, "KeyMetrics:")
			parts = append(parts, metricLines...)
		}

		if doc.Structured.Currency != "" {
			parts = append(parts, "Currency: "+doc.Structured.Currency)
		}

		snippet := doc.RawText
		if len(snippet) > rawTextSnippetLen {
			snippet = snippet[:rawTextSnippetLen]
		}
		if snippet != "" {
			parts = append(parts, "TextSnippet:", snippet)
		}
		parts = append(parts, "---")
	}
	return strings.Join(parts, "\n")
}
