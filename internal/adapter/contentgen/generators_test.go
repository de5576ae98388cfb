package contentgen

import (
	"context"
	"errors"
	"testing"

	"courseforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel returns a canned response for every prompt.
type fakeModel struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				f.prompts = append(f.prompts, text.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestProposeChapters(t *testing.T) {
	model := &fakeModel{response: `Here you go:
[
  {"title": "Goroutine Basics", "video_search_query": "goroutine basics tutorial"},
  {"title": "Channel Patterns", "video_search_query": "go channel patterns"}
]`}
	proposer := NewLLMChapterProposer(model)

	summary := []domain.ChapterQuizSummary{
		{ChapterID: "ch-1", ChapterName: "Goroutines", Score: 2, WrongAnswers: []string{"What starts a goroutine?"}},
	}
	existing := []*domain.Chapter{
		{ID: "ch-1", Name: "Goroutines", VideoSearchQuery: "goroutines"},
	}

	proposed, err := proposer.ProposeChapters(context.Background(), summary, existing)

	assert.NoError(t, err)
	assert.Len(t, proposed, 2)
	assert.Equal(t, "Goroutine Basics", proposed[0].Title)
	assert.Equal(t, "go channel patterns", proposed[1].VideoSearchQuery)

	// The prompt carries both the quiz results and the current chapters.
	assert.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "What starts a goroutine?")
	assert.Contains(t, model.prompts[0], `"video_search_query":"goroutines"`)
}

func TestProposeChapters_EmptyProposalRejected(t *testing.T) {
	model := &fakeModel{response: `[]`}
	proposer := NewLLMChapterProposer(model)

	_, err := proposer.ProposeChapters(context.Background(), nil, nil)

	assert.Error(t, err)
}

func TestProposeChapters_ModelFailure(t *testing.T) {
	model := &fakeModel{err: errors.New("rate limited")}
	proposer := NewLLMChapterProposer(model)

	_, err := proposer.ProposeChapters(context.Background(), nil, nil)

	assert.Error(t, err)
}

func TestMakeQuiz(t *testing.T) {
	model := &fakeModel{response: `{
  "questions": [
    {"question": "Q1", "answer": "A", "option1": "B", "option2": "C", "option3": "D"},
    {"question": "Q2", "answer": "X", "option1": "Y", "option2": "", "option3": "W"}
  ]
}`}
	gen := NewLLMQuizGenerator(model)

	questions, err := gen.MakeQuiz(context.Background(), "Goroutines", "a transcript", 5)

	assert.NoError(t, err)
	// The incomplete second question is dropped.
	assert.Len(t, questions, 1)
	assert.Equal(t, "Q1", questions[0].Question)
}

func TestMakeQuiz_NoUsableQuestions(t *testing.T) {
	model := &fakeModel{response: `{"questions": [{"question": "", "answer": ""}]}`}
	gen := NewLLMQuizGenerator(model)

	_, err := gen.MakeQuiz(context.Background(), "Goroutines", "a transcript", 5)

	assert.Error(t, err)
}

func TestExplain(t *testing.T) {
	model := &fakeModel{response: `{
  "summary": [{"title": "Overview", "explanation": "Goroutines are lightweight.", "flashcards": [{"front": "f", "back": "b"}]}],
  "keyPoints": [{"title": "Scheduling", "explanation": "The runtime multiplexes goroutines."}]
}`}
	explainer := NewLLMContentExplainer(model)

	explanation, err := explainer.Explain(context.Background(), "Goroutines", "a transcript")

	assert.NoError(t, err)
	assert.Len(t, explanation.Summary, 1)
	assert.Len(t, explanation.KeyPoints, 1)
	assert.Equal(t, "Overview", explanation.Summary[0].Title)
	assert.Len(t, explanation.Summary[0].Flashcards, 1)
}

func TestExplain_EmptyResponseRejected(t *testing.T) {
	model := &fakeModel{response: `{"summary": [], "keyPoints": []}`}
	explainer := NewLLMContentExplainer(model)

	_, err := explainer.Explain(context.Background(), "Goroutines", "a transcript")

	assert.Error(t, err)
}
