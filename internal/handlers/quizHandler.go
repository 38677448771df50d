package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"naukrivacancy/database"
	"naukrivacancy/internal/models"
	utilhttp "naukrivacancy/internal/utility/http"
)

var quizCollection *mongo.Collection = database.OpenCollection(database.Client, "quiz")

type quizRequest struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	TotalQuestions  int         `json:"totalQuestions"`
	WinningAmount   interface{} `json:"winningAmount"`
	Price           interface{} `json:"price"`
	DurationMinutes int         `json:"durationMinutes"`
	Category        string      `json:"category"`
	StartDateTime   *time.Time  `json:"startDateTime"`
	ExpireDateTime  *time.Time  `json:"expireDateTime"`
}

func validateQuizRequest(req quizRequest) string {
	missing := firstMissing([]requiredField{
		{"title", strings.TrimSpace(req.Title) != ""},
		{"description", strings.TrimSpace(req.Description) != ""},
		{"totalQuestions", req.TotalQuestions != 0},
		{"winningAmount", req.WinningAmount != nil},
		{"price", req.Price != nil},
		{"durationMinutes", req.DurationMinutes != 0},
		{"category", strings.TrimSpace(req.Category) != ""},
	})
	if missing != "" {
		return missing
	}
	if req.Category != "" && !validCategory(req.Category) {
		return "category must be Free, Quizzes or Mock"
	}
	return ""
}

func CreateQuiz(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateQuizRequest(req); msg != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	category := req.Category
	if category == "" {
		category = models.CategoryFree
	}

	now := time.Now()
	quiz := models.Quiz{
		ID:              primitive.NewObjectID(),
		Title:           req.Title,
		Description:     req.Description,
		TotalQuestions:  req.TotalQuestions,
		WinningAmount:   req.WinningAmount,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Category:        category,
		StartDateTime:   now,
		ExpireDateTime:  now.Add(7 * 24 * time.Hour),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.StartDateTime != nil {
		quiz.StartDateTime = *req.StartDateTime
	}
	if req.ExpireDateTime != nil {
		quiz.ExpireDateTime = *req.ExpireDateTime
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	if _, err := quizCollection.InsertOne(ctx, quiz); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to create quiz")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusCreated, map[string]interface{}{"quiz": quiz}, "Quiz created successfully")
}

func findQuizzes(ctx context.Context, filter bson.M, skip, limit int) ([]models.Quiz, error) {
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := quizCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var quizzes []models.Quiz
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func GetQuizzes(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)
	skip := (page - 1) * limit

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	quizzes, err := findQuizzes(ctx, bson.M{}, skip, limit)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch quizzes")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"quizzes": quizzes}, "Quizzes fetched successfully")
}

func GetActiveQuizzes(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)
	skip := (page - 1) * limit

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	quizzes, err := findQuizzes(ctx, bson.M{"expireDateTime": bson.M{"$gte": time.Now()}}, skip, limit)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch quizzes")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"quizzes": quizzes}, "Quizzes fetched successfully")
}

// GetQuizByID returns the quiz together with a fresh stratified draw of
// questions from the quiz's category.
func GetQuizByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var quiz models.Quiz
	if err := quizCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	totalQuestions := quiz.TotalQuestions
	if totalQuestions == 0 {
		totalQuestions = 20
	}

	questions, err := sampleQuestions(ctx, totalQuestions, quiz.Category)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}
	if len(questions) == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, "No questions found for this category")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"quiz":      quiz,
		"questions": questions,
	}, "Quiz fetched successfully")
}

func UpdateQuizByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var existing models.Quiz
	if err := quizCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	if req.Category != "" && !validCategory(req.Category) {
		utilhttp.RespondError(w, http.StatusBadRequest, "category must be Free, Quizzes or Mock")
		return
	}
	category := req.Category
	if category == "" {
		category = models.CategoryFree
	}

	update := bson.M{
		"title":           req.Title,
		"description":     req.Description,
		"totalQuestions":  req.TotalQuestions,
		"winningAmount":   req.WinningAmount,
		"price":           req.Price,
		"durationMinutes": req.DurationMinutes,
		"category":        category,
		"updatedAt":       time.Now(),
	}
	if req.StartDateTime != nil {
		update["startDateTime"] = *req.StartDateTime
	}
	if req.ExpireDateTime != nil {
		update["expireDateTime"] = *req.ExpireDateTime
	}

	var updated models.Quiz
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := quizCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&updated); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"updatedQuiz": updated}, "Quiz updated successfully")
}

func DeleteQuizByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var quiz models.Quiz
	if err := quizCollection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&quiz); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"quiz": quiz}, "Quiz deleted successfully")
}

type quizAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

type answerResult struct {
	QuestionID    string  `json:"questionId"`
	IsCorrect     bool    `json:"isCorrect"`
	CorrectAnswer string  `json:"correctAnswer"`
	UserAnswer    *string `json:"userAnswer"`
}

// scoreAnswers grades one submission. A question counts when the
// selected option text equals the option at the question's correct
// index; unanswered questions report a null userAnswer.
func scoreAnswers(questions []models.Question, answers []quizAnswer) (int, []answerResult) {
	score := 0
	results := make([]answerResult, 0, len(questions))
	for _, q := range questions {
		var userAnswer *quizAnswer
		for i := range answers {
			if answers[i].QuestionID == q.ID.Hex() {
				userAnswer = &answers[i]
				break
			}
		}

		correct := ""
		if q.CorrectOption >= 0 && q.CorrectOption < len(q.Options) {
			correct = q.Options[q.CorrectOption]
		}
		isCorrect := userAnswer != nil && userAnswer.SelectedOption == correct
		if isCorrect {
			score++
		}

		var selected *string
		if userAnswer != nil {
			selected = &userAnswer.SelectedOption
		}
		results = append(results, answerResult{
			QuestionID:    q.ID.Hex(),
			IsCorrect:     isCorrect,
			CorrectAnswer: correct,
			UserAnswer:    selected,
		})
	}
	return score, results
}

func SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "Id")

	var req struct {
		Answers []quizAnswer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Answers) == 0 {
		utilhttp.RespondError(w, http.StatusBadRequest, "Answers are required")
		return
	}

	id, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var quiz models.Quiz
	if err := quizCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	questionIDs := make([]primitive.ObjectID, 0, len(req.Answers))
	for _, answer := range req.Answers {
		qid, err := primitive.ObjectIDFromHex(answer.QuestionID)
		if err != nil {
			utilhttp.RespondError(w, http.StatusBadRequest, "Some questions are invalid")
			return
		}
		questionIDs = append(questionIDs, qid)
	}

	cursor, err := questionCollection.Find(ctx, bson.M{"_id": bson.M{"$in": questionIDs}})
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}
	defer cursor.Close(ctx)
	var questions []models.Question
	if err := cursor.All(ctx, &questions); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}
	if len(questions) != len(req.Answers) {
		utilhttp.RespondError(w, http.StatusBadRequest, "Some questions are invalid")
		return
	}

	score, details := scoreAnswers(questions, req.Answers)

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"quizId":         quizID,
		"score":          score,
		"totalQuestions": len(questions),
		"details":        details,
	}, "Quiz submitted successfully")
}
