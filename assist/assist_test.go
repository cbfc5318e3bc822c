package assist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/travel"
	"github.com/etnz/travel/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeGenerator answers with a canned text and records the request.
type fakeGenerator struct {
	answer string
	err    error

	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (g *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	g.model, g.config = model, config
	g.prompt = contents[0].Parts[0].Text
	if g.err != nil {
		return nil, g.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(g.answer, genai.RoleModel)}},
	}, nil
}

func day() (travel.Trip, travel.DailyPlan) {
	t := travel.Trip{Title: "Kyoto"}
	t.SelectDates(date.NewRange(date.New(2024, 11, 20), date.New(2024, 11, 20)))
	p := t.Plans[0]
	it := travel.NewScheduleItem("x")
	it.Location = "Kyoto station"
	p.AddItem(it)
	return t, p
}

func TestDraft(t *testing.T) {
	g := &fakeGenerator{answer: "```json\n" + `[
		{"startTime": "13:00", "endTime": "15:00", "location": "Kiyomizu-dera", "transport": "bus 206", "notice": "crowded"},
		{"startTime": "9h", "endTime": "", "location": "Gion", "food": "matcha"}
	]` + "\n```"}
	trip, p := day()

	items, err := New(g, "").Draft(context.Background(), trip, p, "temples please")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, DefaultModel, g.model)
	assert.Equal(t, "application/json", g.config.ResponseMIMEType)
	for _, want := range []string{"Kyoto", "11/20 (Wed)", "Kyoto station", "temples please"} {
		assert.True(t, strings.Contains(g.prompt, want), "prompt misses %q:\n%s", want, g.prompt)
	}

	assert.Equal(t, "13:00", items[0].Start)
	assert.Equal(t, "Kiyomizu-dera", items[0].Location)
	assert.Equal(t, "bus 206", items[0].Note())
	assert.Equal(t, "crowded", items[0].Notes.Get(travel.Notice))

	assert.Equal(t, travel.DefaultStart, items[1].Start)
	assert.Equal(t, travel.DefaultEnd, items[1].End)
	assert.Equal(t, "matcha", items[1].Notes.Get(travel.Food))
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestDraft_Errors(t *testing.T) {
	trip, p := day()
	boom := errors.New("quota exceeded")

	_, err := New(&fakeGenerator{err: boom}, "m").Draft(context.Background(), trip, p, "")
	assert.ErrorIs(t, err, boom)

	_, err = New(&fakeGenerator{answer: "Sorry, I can't."}, "m").Draft(context.Background(), trip, p, "")
	assert.Error(t, err)

	_, err = New(&fakeGenerator{answer: "[]"}, "m").Draft(context.Background(), trip, p, "")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
