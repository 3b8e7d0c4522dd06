package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"papervec/internal/contextutil"
	"papervec/internal/llm"
)

const systemPrompt = "You are an assistant that writes assessment questions " +
	"about academic research papers. Use only the provided content and always " +
	"reply with a single JSON object in the requested format."

// ChatCompleter is the slice of the chat client the generator needs.
type ChatCompleter interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// Generator turns paper chunks into QA pairs through a chat model. Question
// slots cycle through the type, cognitive level and content category tables
// so every paper gets a balanced mix.
type Generator struct {
	Chat     ChatCompleter
	PerPaper int // questions per paper, 10 when zero
}

// GenerateForPaper produces one question per slot. A slot whose model call
// fails or returns unparsable output gets a fallback question instead of
// aborting the paper, so the count always matches the configuration.
func (g *Generator) GenerateForPaper(ctx context.Context, meta PaperMeta, chunks []string) []Question {
	logger := contextutil.LoggerFromContext(ctx)
	if len(chunks) == 0 {
		return nil
	}

	total := g.PerPaper
	if total <= 0 {
		total = 10
	}

	questions := make([]Question, 0, total)
	for i := 0; i < total; i++ {
		questionType := questionTypes[i%len(questionTypes)]
		level := cognitiveLevels[i%len(cognitiveLevels)]
		category := contentCategories[i%len(contentCategories)]
		content := chunks[i%len(chunks)]

		q, err := g.generateOne(ctx, questionType, content, level, category)
		if err != nil {
			logger.WarnContext(ctx, "question generation failed, using fallback",
				"paper", meta.Title, "slot", i+1, "type", questionType, "error", err)
			q = fallbackQuestion(questionType, content, level, category)
		}

		q.ID = fmt.Sprintf("q_%03d", i+1)
		q.PaperTitle = meta.Title
		q.Authors = meta.Authors
		q.PublicationYear = meta.PublicationYear
		q.GeneratedAt = time.Now().Format("2006-01-02 15:04:05")
		questions = append(questions, q)
	}
	return questions
}

func (g *Generator) generateOne(ctx context.Context, questionType, content, level, category string) (Question, error) {
	prompt, err := buildPrompt(questionType, content, level, category)
	if err != nil {
		return Question{}, err
	}

	reply, err := g.Chat.ChatWithMessages(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}, llm.ChatParams{MaxTokens: 700, Temperature: 0.7})
	if err != nil {
		return Question{}, fmt.Errorf("chat completion: %w", err)
	}

	payload, err := extractJSON(reply)
	if err != nil {
		return Question{}, err
	}
	var q Question
	if err := json.Unmarshal([]byte(payload), &q); err != nil {
		return Question{}, fmt.Errorf("parse question JSON: %w", err)
	}
	if strings.TrimSpace(q.Text) == "" {
		return Question{}, fmt.Errorf("model returned a question without text")
	}

	q.Type = questionType
	q.CognitiveLevel = level
	q.ContentCategory = category
	q.SourceContent = sourcePreview(content)
	return q, nil
}

// extractJSON cuts the first balanced-looking JSON object out of a model
// reply, tolerating prose before and after it.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in model reply")
	}
	return s[start : end+1], nil
}

func sourcePreview(content string) string {
	runes := []rune(content)
	if len(runes) > 200 {
		return string(runes[:200]) + "..."
	}
	return content
}

// fallbackQuestion is the static stand-in used when the model cannot supply
// a usable question for a slot.
func fallbackQuestion(questionType, content, level, category string) Question {
	q := Question{
		Type:            questionType,
		CognitiveLevel:  level,
		ContentCategory: category,
		Explanation:     "Fallback question used because the model did not return a usable answer.",
		SourceContent:   sourcePreview(content),
		Fallback:        true,
	}
	switch questionType {
	case TypeMultipleChoice:
		q.Text = "What is the main topic discussed in this research content?"
		q.Options = map[string]string{
			"A": "Methodology",
			"B": "Results",
			"C": "Background",
			"D": "Conclusions",
		}
		q.CorrectAnswer = "A"
	case TypeShortAnswer:
		q.Text = "Summarize the key findings of this research."
		q.ExpectedAnswer = "The research discusses important findings related to the topic."
	default:
		q.Text = "True or False: This research provides valuable insights."
		q.CorrectAnswer = "True"
	}
	return q
}
