// Package coach implements the canned-reply engine behind the chat coaching
// endpoints. Replies come from a static category-keyed table; a category is
// chosen by case-insensitive keyword matching against the user's message.
package coach

import (
	"hash/fnv"
	"strings"
)

// Reply categories.
const (
	CategoryGreeting   = "greeting"
	CategoryMotivation = "motivation"
	CategoryNutrition  = "nutrition"
	CategorySleep      = "sleep"
	CategoryWorkout    = "workout"
	CategoryProgress   = "progress"
	CategoryDefault    = "default"
)

// category pairs trigger keywords with its pool of canned replies.
// Categories are matched in order; the first hit wins.
type category struct {
	name     string
	keywords []string
	replies  []string
}

var categories = []category{
	{
		name:     CategoryGreeting,
		keywords: []string{"hello", "hi ", "hey", "good morning", "good evening"},
		replies: []string{
			"Hey there! Great to see you checking in. What would you like to work on today?",
			"Hello! Ready to make today count? Ask me anything about your training, meals, or sleep.",
			"Hi! I'm here whenever you need a nudge. How are you feeling today?",
		},
	},
	{
		name:     CategoryMotivation,
		keywords: []string{"motivat", "give up", "tired of", "hard", "can't do", "struggling"},
		replies: []string{
			"Progress is built on the days you don't feel like it. One small win today is enough.",
			"You've already shown up — that's the hardest part. Pick one thing and finish it.",
			"Remember why you started. Consistency beats intensity every single time.",
		},
	},
	{
		name:     CategoryNutrition,
		keywords: []string{"eat", "food", "meal", "calorie", "protein", "carb", "diet", "hungry", "snack"},
		replies: []string{
			"Aim for protein in every meal — it keeps you full and protects muscle while you lose fat.",
			"Try logging your meals for the day; your summary will show exactly how much you have left.",
			"Whole foods first: vegetables, lean protein, and slow carbs will carry most of your goals.",
		},
	},
	{
		name:     CategorySleep,
		keywords: []string{"sleep", "insomnia", "awake", "rest", "nap", "bedtime"},
		replies: []string{
			"A consistent bedtime is the single biggest lever for sleep quality. Your consistency score tracks it.",
			"Wind down 30 minutes before bed without screens — it shortens the time it takes to fall asleep.",
			"If you're carrying sleep debt, an earlier bedtime works better than sleeping in.",
		},
	},
	{
		name:     CategoryWorkout,
		keywords: []string{"workout", "exercise", "train", "gym", "run", "lift", "muscle", "cardio"},
		replies: []string{
			"Ask me to recommend a workout and I'll match a routine to your goal.",
			"Two or three focused sessions a week beat one heroic one. Schedule them like meetings.",
			"Log each workout when you finish — watching the history grow is its own motivation.",
		},
	},
	{
		name:     CategoryProgress,
		keywords: []string{"progress", "result", "plateau", "weight", "scale", "measure"},
		replies: []string{
			"Take a progress photo — trends over weeks tell you far more than the scale does day to day.",
			"Plateaus are normal. Hold your routine for two more weeks before changing anything.",
			"Compare averages, not days: weekly averages smooth out water weight and one-off meals.",
		},
	},
}

var defaultReplies = []string{
	"I'm with you! Tell me about your meals, sleep, or training and I'll help you plan the next step.",
	"Got it. Want to talk nutrition, sleep, or workouts? That's where I can help the most.",
}

// Responder picks a canned coaching reply for a user message.
type Responder struct{}

// NewResponder constructs the canned-reply responder.
func NewResponder() *Responder {
	return &Responder{}
}

// Respond returns the reply text and the matched category for a message.
// Matching is case-insensitive substring search over category keywords; when
// nothing matches, the default category answers. Reply selection within a
// category is deterministic in the message text.
func (r *Responder) Respond(message string) (reply, matched string) {
	lower := strings.ToLower(message)
	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return pick(cat.replies, message), cat.name
			}
		}
	}
	return pick(defaultReplies, message), CategoryDefault
}

// Categories returns the category names the responder knows, default excluded.
func (r *Responder) Categories() []string {
	out := make([]string, 0, len(categories))
	for _, cat := range categories {
		out = append(out, cat.name)
	}
	return out
}

func pick(replies []string, message string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(message))
	return replies[int(h.Sum32())%len(replies)]
}
