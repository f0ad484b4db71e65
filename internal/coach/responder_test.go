package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondCategoryMatching(t *testing.T) {
	r := NewResponder()

	tests := []struct {
		name         string
		message      string
		wantCategory string
	}{
		{name: "greeting", message: "hello coach", wantCategory: CategoryGreeting},
		{name: "nutrition keyword", message: "what should I eat before the gym?", wantCategory: CategoryNutrition},
		{name: "sleep keyword", message: "I had terrible sleep last night", wantCategory: CategorySleep},
		{name: "workout keyword", message: "recommend a workout plan", wantCategory: CategoryWorkout},
		{name: "motivation keyword", message: "I feel like I should give up", wantCategory: CategoryMotivation},
		{name: "progress keyword", message: "hit a plateau on the scale", wantCategory: CategoryProgress},
		{name: "case insensitive", message: "WHAT SHOULD I EAT TODAY", wantCategory: CategoryNutrition},
		{name: "no match falls back to default", message: "zzz qqq", wantCategory: CategoryDefault},
		{name: "empty message falls back to default", message: "", wantCategory: CategoryDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, cat := r.Respond(tt.message)
			assert.Equal(t, tt.wantCategory, cat)
			assert.NotEmpty(t, reply)
		})
	}
}

func TestRespondFirstCategoryWins(t *testing.T) {
	r := NewResponder()

	// "hello" (greeting) appears before "sleep" in the category order.
	_, cat := r.Respond("hello, I want to talk about sleep")
	assert.Equal(t, CategoryGreeting, cat)
}

func TestRespondDeterministic(t *testing.T) {
	r := NewResponder()

	first, _ := r.Respond("what should I eat?")
	second, _ := r.Respond("what should I eat?")
	assert.Equal(t, first, second)
}

func TestCategories(t *testing.T) {
	r := NewResponder()

	cats := r.Categories()
	assert.Contains(t, cats, CategoryNutrition)
	assert.Contains(t, cats, CategorySleep)
	assert.NotContains(t, cats, CategoryDefault)
}
