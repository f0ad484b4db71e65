package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"coachapi/internal/service"
)

// Services bundles the use-case implementations the routes depend on.
type Services struct {
	Users     service.UserService
	Coach     service.CoachService
	Nutrition service.NutritionService
	Sleep     service.SleepService
	Workouts  service.WorkoutService
	Photos    service.PhotoService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers free of business logic; they validate, delegate, and translate errors.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Onboarding and profiles
	app.Post("/users", RegisterUser(svcs.Users))
	app.Get("/users/:id", GetUser(svcs.Users))
	app.Put("/users/:id/profile", UpdateUserProfile(svcs.Users))
	app.Delete("/users/:id", DeleteUser(svcs.Users))

	// Chat coaching
	app.Post("/users/:id/threads", StartThread(svcs.Coach))
	app.Get("/users/:id/threads", ListThreads(svcs.Coach))
	app.Post("/threads/:id/messages", SendMessage(svcs.Coach))
	app.Get("/threads/:id/messages", GetHistory(svcs.Coach))

	// Nutrition tracking
	app.Post("/users/:id/meals", LogMeal(svcs.Nutrition))
	app.Get("/users/:id/meals", ListMeals(svcs.Nutrition, loc))
	app.Get("/users/:id/nutrition/summary", GetDailySummary(svcs.Nutrition, loc))
	app.Delete("/meals/:id", DeleteMeal(svcs.Nutrition))

	// Sleep tracking and analysis
	app.Post("/users/:id/sleep", LogSleep(svcs.Sleep))
	app.Get("/users/:id/sleep", ListSleep(svcs.Sleep))
	app.Get("/users/:id/sleep/analysis", GetSleepAnalysis(svcs.Sleep))

	// Workout tracking and recommendation
	app.Post("/users/:id/workouts", LogWorkout(svcs.Workouts))
	app.Get("/users/:id/workouts", ListWorkouts(svcs.Workouts))
	app.Post("/workouts/recommend", RecommendWorkout(svcs.Workouts))
	app.Delete("/workouts/:id", DeleteWorkout(svcs.Workouts))

	// Progress photos
	app.Post("/users/:id/photos", UploadPhoto(svcs.Photos))
	app.Get("/users/:id/photos", ListPhotos(svcs.Photos))
	app.Get("/photos/:id/download", DownloadPhoto(svcs.Photos))
	app.Delete("/photos/:id", DeletePhoto(svcs.Photos))
}
