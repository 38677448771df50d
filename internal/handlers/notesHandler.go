package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	s3 "naukrivacancy/aws"
	"naukrivacancy/database"
	"naukrivacancy/internal/models"
	utilhttp "naukrivacancy/internal/utility/http"
)

var notesCollection *mongo.Collection = database.OpenCollection(database.Client, "notes")

type createNotesRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
	Link        string   `json:"link"`
	Price       *float64 `json:"price"`
}

func validateNotesRequest(req createNotesRequest) string {
	return firstMissing([]requiredField{
		{"title", strings.TrimSpace(req.Title) != ""},
		{"description", strings.TrimSpace(req.Description) != ""},
		{"details", strings.TrimSpace(req.Details) != ""},
		{"link", strings.TrimSpace(req.Link) != ""},
		{"price", req.Price != nil},
	})
}

func CreateNotes(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req createNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateNotesRequest(req); msg != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()
	note := models.Notes{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		Link:        req.Link,
		Price:       *req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	if _, err := notesCollection.InsertOne(ctx, note); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to create Notes")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusCreated, map[string]interface{}{"newJobPost": note}, "Notes created successfully")
}

func GetAllNotes(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)
	skip := (page - 1) * limit

	filter := bson.M{}
	if search != "" {
		filter = bson.M{"$or": []bson.M{
			{"title": searchRegex(search)},
			{"description": searchRegex(search)},
		}}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	total, err := notesCollection.CountDocuments(ctx, filter)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Notes")
		return
	}
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := notesCollection.Find(ctx, filter, opts)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Notes")
		return
	}
	defer cursor.Close(ctx)
	var notes []models.Notes
	if err := cursor.All(ctx, &notes); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Notes")
		return
	}

	pageCount := int((total + int64(limit) - 1) / int64(limit))
	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"notes":     notes,
		"total":     total,
		"page":      page,
		"pageCount": pageCount,
	}, "Notes fetched successfully")
}

func GetNotesByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Notes not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var note models.Notes
	if err := notesCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&note); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Notes not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"note": note}, "")
}

// UpdateNotesByID re-runs the full create validation, partial updates
// are not supported for notes.
func UpdateNotesByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Notes not found")
		return
	}

	var req createNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateNotesRequest(req); msg != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       req.Title,
		"description": req.Description,
		"details":     req.Details,
		"link":        req.Link,
		"price":       *req.Price,
		"updatedAt":   time.Now(),
	}}

	var updated models.Notes
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := notesCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Notes not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"updatedNote": updated}, "Notes updated successfully")
}

func DeleteNotesByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Notes not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	result, err := notesCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil || result.DeletedCount == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, "Notes not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{}, "Notes deleted successfully")
}

// UploadNotesFile stores the uploaded document in S3 and returns the
// public link for the note's link field.
func UploadNotesFile(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("notesFile")
	if err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "NotesFile is required")
		return
	}
	defer file.Close()

	awsConfig := s3.LoadConfig()
	sess, err := s3.NewSession(awsConfig)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	fileName := fmt.Sprintf("notes/%d%s", time.Now().UnixMilli(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	link, err := s3.UploadObject(sess, awsConfig, fileName, contentType, file)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"link": link}, "File uploaded successfully")
}
