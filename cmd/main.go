package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"naukrivacancy/internal/handlers"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

func main() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Expired verification codes are swept in the background.
	go handlers.CodeStore.RunCleanup(time.Hour)

	r.Route("/api/v1", func(r chi.Router) {

		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", handlers.Register)
			r.Post("/code", handlers.SendVerificationCode)
			r.Post("/login", handlers.Login)
			r.Get("/logout", handlers.Logout)
			r.With(handlers.Authentication).Get("/profile", handlers.Profile)
		})

		// Job post routes
		r.Route("/jobposts", func(r chi.Router) {
			r.With(handlers.Authentication).Post("/create", handlers.CreateJobPost)
			r.Get("/getAll", handlers.GetAllJobPosts)
			r.Get("/state", handlers.GetJobPostByState)
			r.Get("/job/{postName}", handlers.GetJobPostByName)
			r.Get("/AdmitCard", handlers.GetJobPostByAdmitCardLink)
			r.Get("/ResultLink", handlers.GetJobPostByResultLink)
			r.Get("/AnswerKeyLink", handlers.GetJobPostByAnswerKeyLink)
			r.Get("/AdmissionLink", handlers.GetJobPostByAdmissionLink)
			r.Get("/ApplyLink", handlers.GetJobPostByApplyLink)
			r.Get("/Upcoming", handlers.GetJobWithoutApplyLink)
			r.With(handlers.Authentication).Put("/{Id}", handlers.UpdateJobPostByID)
			r.With(handlers.Authentication).Delete("/{Id}", handlers.DeleteJobPostByID)
			r.Get("/{Id}", handlers.GetJobPostByID)
		})

		// Question routes
		r.Route("/questions", func(r chi.Router) {
			r.With(handlers.Authentication).Post("/create", handlers.CreateQuestion)
			r.Get("/random", handlers.GetRandomQuestions)
			r.Get("/allQuestion", handlers.GetAllQuestions)
			r.With(handlers.Authentication).Put("/{Id}", handlers.UpdateQuestionByID)
			r.With(handlers.Authentication).Delete("/{Id}", handlers.DeleteQuestionByID)
		})

		// Quiz routes
		r.Route("/quizzes", func(r chi.Router) {
			r.With(handlers.Authentication).Post("/create", handlers.CreateQuiz)
			r.Get("/getAll", handlers.GetQuizzes)
			r.Get("/active", handlers.GetActiveQuizzes)
			r.Get("/{Id}", handlers.GetQuizByID)
			r.With(handlers.Authentication).Put("/{Id}", handlers.UpdateQuizByID)
			r.With(handlers.Authentication).Delete("/{Id}", handlers.DeleteQuizByID)
			r.Post("/{Id}/submit", handlers.SubmitQuiz)
		})

		// Private job routes
		r.Route("/privateJob", func(r chi.Router) {
			r.With(handlers.Authentication).Post("/create", handlers.CreatePrivateJob)
			r.Get("/allJob", handlers.GetAllPrivateJobs)
			r.With(handlers.Authentication).Get("/{Id}", handlers.GetPrivateJobByID)
			r.With(handlers.Authentication).Put("/{Id}", handlers.UpdatePrivateJobByID)
			r.With(handlers.Authentication).Delete("/{Id}", handlers.DeletePrivateJobByID)
		})

		// Offline job routes
		r.Route("/offlineJob", func(r chi.Router) {
			r.With(handlers.Authentication).Post("/create", handlers.CreateOfflineJob)
			r.Get("/allJob", handlers.GetAllOfflineJobs)
			r.Get("/{Id}", handlers.GetOfflineJobByID)
			r.With(handlers.Authentication).Put("/{Id}", handlers.UpdateOfflineJobByID)
			r.With(handlers.Authentication).Delete("/{Id}", handlers.DeleteOfflineJobByID)
		})

		// Notes routes
		r.Route("/notes", func(r chi.Router) {
			r.With(handlers.Authentication).Post("/create", handlers.CreateNotes)
			r.With(handlers.Authentication).Post("/upload", handlers.UploadNotesFile)
			r.Get("/allNote", handlers.GetAllNotes)
			r.Get("/{Id}", handlers.GetNotesByID)
			r.With(handlers.Authentication).Put("/{Id}", handlers.UpdateNotesByID)
			r.With(handlers.Authentication).Delete("/{Id}", handlers.DeleteNotesByID)
		})

		// Payment routes
		r.Route("/payment", func(r chi.Router) {
			r.Post("/makePayment", handlers.MakePayment)
			r.Post("/callback", handlers.PaymentCallback)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	fmt.Printf("Server is running on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
