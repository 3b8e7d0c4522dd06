package qa

import "fmt"

// Bloom's taxonomy levels and content categories cycled across a paper's
// question slots.
var (
	questionTypes = []string{TypeMultipleChoice, TypeShortAnswer, TypeTrueFalse}

	cognitiveLevels = []string{
		"remember", "understand", "apply", "analyze", "evaluate", "create",
	}

	contentCategories = []string{
		"methodology", "results", "conclusions", "background",
		"visual_content", "formulas",
	}
)

const multipleChoiceTemplate = `Generate a multiple choice question based on the following research content:

Content: %s

Requirements:
- Question should test understanding of key concepts
- Provide 4 options (A, B, C, D)
- Only one correct answer
- Include explanation for the correct answer
- Cognitive level: %s

Format your response as JSON:
{
    "question": "Question text here?",
    "options": {
        "A": "Option A",
        "B": "Option B",
        "C": "Option C",
        "D": "Option D"
    },
    "correct_answer": "A",
    "explanation": "Explanation for why this is correct",
    "cognitive_level": "%s",
    "content_category": "%s"
}`

const shortAnswerTemplate = `Generate a short answer question based on the following research content:

Content: %s

Requirements:
- Question should require 2-3 sentence response
- Include expected key points in explanation
- Cognitive level: %s

Format your response as JSON:
{
    "question": "Question text here?",
    "expected_answer": "Expected answer with key points",
    "explanation": "Detailed explanation of the answer",
    "cognitive_level": "%s",
    "content_category": "%s"
}`

const trueFalseTemplate = `Generate a true/false question based on the following research content:

Content: %s

Requirements:
- Clear true/false statement
- Include explanation for the answer
- Cognitive level: %s

Format your response as JSON:
{
    "question": "True or False: Statement here",
    "correct_answer": "True",
    "explanation": "Explanation for why this is true/false",
    "cognitive_level": "%s",
    "content_category": "%s"
}`

// buildPrompt renders the template for one question slot. Content is capped
// so a huge chunk cannot blow the model's context window.
func buildPrompt(questionType, content, cognitiveLevel, contentCategory string) (string, error) {
	const maxContentRunes = 1000
	if runes := []rune(content); len(runes) > maxContentRunes {
		content = string(runes[:maxContentRunes])
	}

	var template string
	switch questionType {
	case TypeMultipleChoice:
		template = multipleChoiceTemplate
	case TypeShortAnswer:
		template = shortAnswerTemplate
	case TypeTrueFalse:
		template = trueFalseTemplate
	default:
		return "", fmt.Errorf("unknown question type %q", questionType)
	}
	return fmt.Sprintf(template, content, cognitiveLevel, cognitiveLevel, contentCategory), nil
}
