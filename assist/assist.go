// Package assist drafts the schedule of a day with Gemini.
package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/travel"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator generates content. *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ErrEmptyResponse is returned when the model answered nothing usable.
var ErrEmptyResponse = errors.New("empty response from the model")

const instruction = `You are a professional tour guide helping to plan one day of a trip.
Answer with a JSON array of stops, in chronological order, each stop being an object with:
- "startTime" and "endTime": zero padded 24h times like "09:00",
- "location": the name of the place,
- "transport": how to get there,
- "food": where to eat nearby,
- "restroom": where to find restrooms,
- "notice": anything worth knowing before going.
Use empty strings for unknown values.`

// stop is one entry of the model answer.
type stop struct {
	Start     string `json:"startTime"`
	End       string `json:"endTime"`
	Location  string `json:"location"`
	Transport string `json:"transport"`
	Food      string `json:"food"`
	Restroom  string `json:"restroom"`
	Notice    string `json:"notice"`
}

// Drafter asks a model for schedule items.
type Drafter struct {
	gen   Generator
	model string
}

// New returns a Drafter using model, or DefaultModel if empty.
func New(gen Generator, model string) *Drafter {
	if model == "" {
		model = DefaultModel
	}
	return &Drafter{gen: gen, model: model}
}

// NewClient returns a Drafter backed by the Gemini API. An empty apiKey lets
// the client read GEMINI_API_KEY or GOOGLE_API_KEY.
func NewClient(ctx context.Context, apiKey, model string) (*Drafter, error) {
	var cfg *genai.ClientConfig
	if apiKey != "" {
		cfg = &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	return New(client.Models, model), nil
}

// Prompt describes the day to the model.
func Prompt(t travel.Trip, p travel.DailyPlan, request string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip: %s\n", t.Title)
	fmt.Fprintf(&b, "Day: %s (%s) %s\n", p.Date, p.Weekday, p.Title)
	if len(p.Items) > 0 {
		b.WriteString("Already planned:\n")
		for _, it := range p.Items {
			fmt.Fprintf(&b, "- %s-%s %s\n", it.Start, it.End, it.Location)
		}
	}
	if p.Memo != "" {
		fmt.Fprintf(&b, "Memo: %s\n", p.Memo)
	}
	if request != "" {
		fmt.Fprintf(&b, "Request: %s\n", request)
	}
	return b.String()
}

// Draft asks the model for the stops of day p and returns them as new
// schedule items. Times the model got wrong are replaced by the defaults.
// The items are not normalized.
func (d *Drafter) Draft(ctx context.Context, t travel.Trip, p travel.DailyPlan, request string) ([]travel.ScheduleItem, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0.7),
	}
	resp, err := d.gen.GenerateContent(ctx, d.model, genai.Text(Prompt(t, p, request)), config)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return parse(text.String())
}

// parse decodes the model answer, tolerating a fenced code block around it.
func parse(answer string) ([]travel.ScheduleItem, error) {
	answer = strings.TrimSpace(answer)
	answer = strings.TrimPrefix(answer, "```json")
	answer = strings.TrimPrefix(answer, "```")
	answer = strings.TrimSuffix(answer, "```")

	var stops []stop
	if err := json.Unmarshal([]byte(answer), &stops); err != nil {
		return nil, fmt.Errorf("unexpected answer from the model: %w", err)
	}
	if len(stops) == 0 {
		return nil, ErrEmptyResponse
	}
	items := make([]travel.ScheduleItem, 0, len(stops))
	for _, s := range stops {
		it := travel.NewScheduleItem(travel.NewID("item"))
		if travel.ValidateClock(s.Start) == nil {
			it.Start = s.Start
		}
		if travel.ValidateClock(s.End) == nil {
			it.End = s.End
		}
		it.Location = s.Location
		it.Notes.Set(travel.Transport, s.Transport)
		it.Notes.Set(travel.Food, s.Food)
		it.Notes.Set(travel.Restroom, s.Restroom)
		it.Notes.Set(travel.Notice, s.Notice)
		items = append(items, it)
	}
	travel.Log.WithField("items", len(items)).Debug("day drafted")
	return items, nil
}
