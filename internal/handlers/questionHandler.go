package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"naukrivacancy/database"
	"naukrivacancy/internal/models"
	"naukrivacancy/internal/sampler"
	utilhttp "naukrivacancy/internal/utility/http"
)

var questionCollection *mongo.Collection = database.OpenCollection(database.Client, "question")

type createQuestionRequest struct {
	QuestionName  string   `json:"questionName"`
	Options       []string `json:"options"`
	CorrectOption *int     `json:"correctOption"`
	Explanation   string   `json:"explanation"`
	Marks         *float64 `json:"marks"`
	NegativeMarks *float64 `json:"negativeMarks"`
	Level         string   `json:"level"`
	Category      string   `json:"category"`
}

func validLevel(level string) bool {
	return level == models.LevelEasy || level == models.LevelModerate || level == models.LevelDifficult
}

func validCategory(category string) bool {
	return category == models.CategoryFree || category == models.CategoryQuizzes || category == models.CategoryMock
}

func CreateQuestion(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	missing := firstMissing([]requiredField{
		{"questionName", strings.TrimSpace(req.QuestionName) != ""},
		{"options", len(req.Options) > 0},
		{"correctOption", req.CorrectOption != nil},
		{"explanation", strings.TrimSpace(req.Explanation) != ""},
		{"marks", req.Marks != nil},
		{"negativeMarks", req.NegativeMarks != nil},
		{"level", strings.TrimSpace(req.Level) != ""},
		{"category", strings.TrimSpace(req.Category) != ""},
	})
	if missing != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, missing)
		return
	}

	if len(req.Options) != 4 {
		utilhttp.RespondError(w, http.StatusBadRequest, "Options must be an array of exactly 4 strings")
		return
	}
	if *req.CorrectOption < 0 || *req.CorrectOption > 3 {
		utilhttp.RespondError(w, http.StatusBadRequest, "correctOption must be a number between 0 and 3")
		return
	}
	if req.Level != "" && !validLevel(req.Level) {
		utilhttp.RespondError(w, http.StatusBadRequest, "level must be Easy, Moderate, or Difficult")
		return
	}
	if req.Category != "" && !validCategory(req.Category) {
		utilhttp.RespondError(w, http.StatusBadRequest, "category must be Free, Quizzes or Mock")
		return
	}

	level := req.Level
	if level == "" {
		level = models.LevelEasy
	}
	category := req.Category
	if category == "" {
		category = models.CategoryFree
	}

	now := time.Now()
	question := models.Question{
		ID:            primitive.NewObjectID(),
		QuestionName:  req.QuestionName,
		Options:       req.Options,
		CorrectOption: *req.CorrectOption,
		Explanation:   req.Explanation,
		Marks:         *req.Marks,
		NegativeMarks: *req.NegativeMarks,
		Level:         level,
		Category:      category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	if _, err := questionCollection.InsertOne(ctx, question); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Question Not Created Due to Server issue")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusCreated, map[string]interface{}{"newQuestion": question}, "Question created successfully")
}

// sampleByLevel draws up to size random questions of one difficulty.
// A non-positive size skips the query entirely.
func sampleByLevel(ctx context.Context, level, category string, size int) ([]models.Question, error) {
	if size <= 0 {
		return nil, nil
	}
	match := bson.M{"level": level}
	if category != "" {
		match["category"] = category
	}
	cursor, err := questionCollection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: size}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var questions []models.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// sampleQuestions draws a stratified random set: roughly 20% difficult,
// 30% moderate, the rest easy. A sparse level simply contributes fewer
// questions than its quota.
func sampleQuestions(ctx context.Context, total int, category string) ([]models.Question, error) {
	numDifficult, numModerate, numEasy := sampler.Quota(total)

	difficult, err := sampleByLevel(ctx, models.LevelDifficult, category, numDifficult)
	if err != nil {
		return nil, err
	}
	moderate, err := sampleByLevel(ctx, models.LevelModerate, category, numModerate)
	if err != nil {
		return nil, err
	}
	easy, err := sampleByLevel(ctx, models.LevelEasy, category, numEasy)
	if err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(difficult)+len(moderate)+len(easy))
	questions = append(questions, difficult...)
	questions = append(questions, moderate...)
	questions = append(questions, easy...)
	sampler.Shuffle(questions)
	return questions, nil
}

func GetRandomQuestions(w http.ResponseWriter, r *http.Request) {
	numberOfQuestion := 20
	if raw := r.URL.Query().Get("numberOfQuestion"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			numberOfQuestion = parsed
		}
	}
	if numberOfQuestion <= 0 {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid number of questions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	questions, err := sampleQuestions(ctx, numberOfQuestion, "")
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}
	if len(questions) == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, "No questions found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"questions": questions}, "Random questions fetched successfully")
}

func GetAllQuestions(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	page := queryInt(r, "page", 1)
	limit := 20
	skip := (page - 1) * limit

	filter := bson.M{}
	if search != "" {
		filter = bson.M{"$or": []bson.M{{"questionName": searchRegex(search)}}}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	total, err := questionCollection.CountDocuments(ctx, filter)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := questionCollection.Find(ctx, filter, opts)
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

	pageCount := int((total + int64(limit) - 1) / int64(limit))
	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"total":     total,
		"page":      page,
		"pageCount": pageCount,
	}, "All questions fetched successfully")
}

func UpdateQuestionByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Question not found")
		return
	}

	var update map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	delete(update, "_id")
	update["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var question models.Question
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := questionCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&question); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Question not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"question": question}, "Question updated successfully")
}

func DeleteQuestionByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Question not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	result, err := questionCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil || result.DeletedCount == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, "Question not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{}, "Question deleted successfully")
}
