package dialogue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"neobook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway returns a canned response or error for every call.
type fakeGateway struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGateway) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeGateway) CompleteStructured(ctx context.Context, prompt string, out any) error {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.response), out)
}

func (f *fakeGateway) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

func turn(role, content string, meta map[string]string) models.ConversationTurn {
	return models.ConversationTurn{
		SessionID: "s1",
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Metadata:  meta,
	}
}

func TestExtractReturnsParsedPartial(t *testing.T) {
	gw := &fakeGateway{response: `{"name": "Alice", "email": null, "phone": null, "booking_type": null, "date": "2024-01-01", "time": null, "confirmation": false}`}
	extractor := &Extractor{Gateway: gw}

	slots := extractor.Extract(context.Background(), nil, "I'm Alice, book me for Jan 1st")

	name, ok := slots.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Alice", name)
	date, _ := slots.Get("date")
	assert.Equal(t, "2024-01-01", date)
	_, ok = slots.Get("email")
	assert.False(t, ok)
	assert.False(t, slots.Confirmed)
}

func TestExtractFailureYieldsEmptyPartial(t *testing.T) {
	cases := []struct {
		name string
		gw   *fakeGateway
	}{
		{"gateway error", &fakeGateway{err: errors.New("timeout")}},
		{"malformed output", &fakeGateway{response: "sorry, I cannot do that"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			extractor := &Extractor{Gateway: tc.gw}
			slots := extractor.Extract(context.Background(), nil, "book a room")
			assert.True(t, slots.Empty())
		})
	}
}

func TestExtractDropsEmptyStringValues(t *testing.T) {
	gw := &fakeGateway{response: `{"name": "", "email": "a@b.c"}`}
	extractor := &Extractor{Gateway: gw}

	slots := extractor.Extract(context.Background(), nil, "my email is a@b.c")

	_, ok := slots.Get("name")
	assert.False(t, ok, "empty string must be treated as absent")
	email, _ := slots.Get("email")
	assert.Equal(t, "a@b.c", email)
}

func TestExtractPromptContainsRulesAndHistory(t *testing.T) {
	gw := &fakeGateway{response: `{}`}
	extractor := &Extractor{Gateway: gw}

	history := []models.ConversationTurn{
		turn(models.RoleUser, "I want to book a room", nil),
		turn(models.RoleAssistant, "Please provide your name.", nil),
	}
	extractor.Extract(context.Background(), history, "Alice")

	require.Len(t, gw.prompts, 1)
	prompt := gw.prompts[0]
	assert.Contains(t, prompt, "IGNORE the details and confirmation from that previous booking")
	assert.Contains(t, prompt, `"same as before"`)
	assert.Contains(t, prompt, "USER: I want to book a room")
	assert.Contains(t, prompt, "ASSISTANT: Please provide your name.")
	assert.Contains(t, prompt, "Current Input: Alice")
}

func TestTrimAtCommitBoundary(t *testing.T) {
	history := []models.ConversationTurn{
		turn(models.RoleUser, "book a room", nil),
		turn(models.RoleAssistant, "Booking Confirmed!", map[string]string{models.MetaBookingConfirmed: "true"}),
		turn(models.RoleUser, "book another one", nil),
	}

	trimmed := TrimAtCommitBoundary(history)
	require.Len(t, trimmed, 1)
	assert.Equal(t, "book another one", trimmed[0].Content)

	// No boundary leaves history untouched.
	plain := []models.ConversationTurn{turn(models.RoleUser, "hello", nil)}
	assert.Equal(t, plain, TrimAtCommitBoundary(plain))

	// Boundary as the last turn means a fresh start.
	ended := []models.ConversationTurn{
		turn(models.RoleUser, "confirm", nil),
		turn(models.RoleAssistant, "Booking Confirmed!", map[string]string{models.MetaBookingConfirmed: "true"}),
	}
	assert.Empty(t, TrimAtCommitBoundary(ended))
}

func TestExtractPromptExcludesTurnsBeforeCommitBoundary(t *testing.T) {
	gw := &fakeGateway{response: `{}`}
	extractor := &Extractor{Gateway: gw}

	history := []models.ConversationTurn{
		turn(models.RoleUser, "book me as Bob", nil),
		turn(models.RoleAssistant, "Booking Confirmed!", map[string]string{models.MetaBookingConfirmed: "true"}),
		turn(models.RoleUser, "now book a spa visit", nil),
	}
	extractor.Extract(context.Background(), history, "for tomorrow")

	require.Len(t, gw.prompts, 1)
	assert.NotContains(t, gw.prompts[0], "book me as Bob")
	assert.Contains(t, gw.prompts[0], "now book a spa visit")
}
