// Package respond resolves the text reply for a chat turn. Resolution order:
// tenant keyword templates, intent-based canned replies, generative model,
// static filler. The first step that produces text wins.
package respond

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/leadpilot-ai/chatbot-platform/internal/intent"
	"github.com/leadpilot-ai/chatbot-platform/internal/llm"
	"github.com/leadpilot-ai/chatbot-platform/internal/model"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
	"github.com/leadpilot-ai/chatbot-platform/pkg/logger"
	"github.com/leadpilot-ai/chatbot-platform/pkg/metrics"
)

// Source names which resolution step produced the reply.
type Source string

const (
	SourceKeyword Source = "keyword"
	SourceIntent  Source = "intent"
	SourceLLM     Source = "llm"
	SourceFiller  Source = "filler"
)

// Result is a resolved reply and the step that produced it.
type Result struct {
	Text   string
	Source Source
}

// Picker selects an index in [0,n). The default picker is uniform random;
// tests substitute a deterministic one.
type Picker interface {
	Pick(n int) int
}

type randomPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (p *randomPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

// NewRandomPicker returns the default uniform random picker.
func NewRandomPicker() Picker {
	return &randomPicker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var (
	errNoLLMClient     = errors.New("no llm client configured")
	errEmptyCompletion = errors.New("empty completion")
)

// Generator resolves replies for chat turns.
type Generator struct {
	llmClient  llm.Client // nil when no API key is configured
	llmTimeout time.Duration
	picker     Picker
	logger     *logger.Logger
}

// NewGenerator creates a response generator. llmClient may be nil; the
// generator then skips straight from canned replies to fillers.
func NewGenerator(llmClient llm.Client, llmTimeout time.Duration, picker Picker, log *logger.Logger) *Generator {
	if picker == nil {
		picker = NewRandomPicker()
	}
	return &Generator{
		llmClient:  llmClient,
		llmTimeout: llmTimeout,
		picker:     picker,
		logger:     log,
	}
}

// Canned replies for well-known intents, consulted after tenant keyword
// rules and before the generative model.
var intentReplies = map[string]string{
	intent.IntentPropertySearch: "🏠 I'd be happy to help you find the perfect property! What type of home are you looking for, and what's your budget range?",
	intent.IntentMarketInfo:     "📊 I can provide you with current market information! What specific area or property type are you interested in?",
	intent.IntentPersonalInjury: "🚗 I'm sorry to hear about your accident. To assess your case, could you tell me when it happened, what injuries you sustained, and whether you've received medical treatment?",
	intent.IntentFamilyLaw:      "👨‍👩‍👧‍👦 I can help with family law matters. What specific type of family law issue are you dealing with?",
	intent.IntentProductSearch:  "🛒 I'd love to help you find the perfect product! What type of item are you looking for?",
	intent.IntentOrderStatus:    "📦 I can help you track your order! Please provide your order number.",
}

// Generate resolves the reply for one turn. It never fails: every path
// terminates in some non-empty text.
func (g *Generator) Generate(ctx context.Context, message string, intentResult model.IntentResult, leadScore model.LeadScoreResult, state *model.ConversationState, cfg *tenant.ClientConfig) Result {
	lower := strings.ToLower(message)

	// Step 1: tenant keyword templates, in declared order.
	for _, r := range cfg.Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return Result{Text: Substitute(r.Response, cfg.Contact), Source: SourceKeyword}
			}
		}
	}

	// Step 2: canned replies for well-known intents.
	if reply, ok := intentReplies[intentResult.Intent]; ok {
		return Result{Text: reply, Source: SourceIntent}
	}

	// Step 3: generative model.
	if text, err := g.complete(ctx, message, state, cfg); err == nil {
		return Result{Text: text, Source: SourceLLM}
	} else {
		g.logger.Warn("generative reply failed, using filler",
			zap.String("client_id", cfg.ClientID),
			zap.Error(err),
		)
	}

	// Step 4: static filler.
	return Result{Text: g.filler(cfg), Source: SourceFiller}
}

func (g *Generator) complete(ctx context.Context, message string, state *model.ConversationState, cfg *tenant.ClientConfig) (string, error) {
	if g.llmClient == nil {
		return "", errNoLLMClient
	}

	if g.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.llmTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.llmClient.Complete(ctx, &llm.CompletionRequest{
		Messages:    promptMessages(message, state, cfg),
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		metrics.RecordLLMRequest(g.llmClient.Name(), "error", time.Since(start).Seconds())
		return "", err
	}
	metrics.RecordLLMRequest(g.llmClient.Name(), "success", time.Since(start).Seconds())

	if resp.Content == "" {
		return "", errEmptyCompletion
	}
	return resp.Content, nil
}

// historyWindow bounds how many prior turns are replayed to the model.
const historyWindow = 6

// promptMessages builds the chat transcript for the model: system prompt,
// then the tail of the conversation history. The current user message is
// already the last history entry when a session exists.
func promptMessages(message string, state *model.ConversationState, cfg *tenant.ClientConfig) []llm.ChatMessage {
	msgs := []llm.ChatMessage{{Role: "system", Content: systemPrompt(cfg)}}

	if state == nil || len(state.History) == 0 {
		return append(msgs, llm.ChatMessage{Role: "user", Content: message})
	}

	history := state.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, m := range history {
		role := "user"
		if m.Sender == model.SenderBot {
			role = "assistant"
		}
		msgs = append(msgs, llm.ChatMessage{Role: role, Content: m.Text})
	}
	return msgs
}

// filler returns one of the industry's hand-written filler sentences, or the
// tenant's fallback template when the industry has none.
func (g *Generator) filler(cfg *tenant.ClientConfig) string {
	sentences := fillers[cfg.Industry]
	if len(sentences) == 0 {
		return Fallback(cfg)
	}
	return sentences[g.picker.Pick(len(sentences))]
}

// Fallback renders the tenant's static fallback template with contact
// placeholders filled in.
func Fallback(cfg *tenant.ClientConfig) string {
	tmpl := cfg.Fallback
	if tmpl == "" {
		tmpl = "I'm here to help! How can I assist you today?"
	}
	return Substitute(tmpl, cfg.Contact)
}

// Substitute fills the {phone} {email} {website} {address} placeholders from
// the tenant contact record. Missing fields render as empty strings.
func Substitute(template string, c tenant.Contact) string {
	return strings.NewReplacer(
		"{phone}", c.Phone,
		"{email}", c.Email,
		"{website}", c.Website,
		"{address}", c.Address,
	).Replace(template)
}
