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

var offlinePostCollection *mongo.Collection = database.OpenCollection(database.Client, "offlinepost")

type createOfflineJobRequest struct {
	PostName      string   `json:"postName"`
	Description   string   `json:"description"`
	Qualification string   `json:"qualification"`
	AgeLimit      string   `json:"ageLimit"`
	LastDate      string   `json:"lastDate"`
	Details       string   `json:"details"`
	Price         *float64 `json:"price"`
	Link          string   `json:"link"`
}

func CreateOfflineJob(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req createOfflineJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	missing := firstMissing([]requiredField{
		{"postName", strings.TrimSpace(req.PostName) != ""},
		{"description", strings.TrimSpace(req.Description) != ""},
		{"qualification", strings.TrimSpace(req.Qualification) != ""},
		{"ageLimit", strings.TrimSpace(req.AgeLimit) != ""},
		{"lastDate", strings.TrimSpace(req.LastDate) != ""},
		{"details", strings.TrimSpace(req.Details) != ""},
		{"price", req.Price != nil},
		{"link", strings.TrimSpace(req.Link) != ""},
	})
	if missing != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, missing)
		return
	}

	now := time.Now()
	post := models.OfflinePost{
		ID:            primitive.NewObjectID(),
		PostName:      req.PostName,
		Description:   req.Description,
		Qualification: req.Qualification,
		AgeLimit:      req.AgeLimit,
		LastDate:      req.LastDate,
		Details:       req.Details,
		Price:         *req.Price,
		Link:          req.Link,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	if _, err := offlinePostCollection.InsertOne(ctx, post); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to create Offline Job post")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusCreated, map[string]interface{}{"newJobPost": post}, "Offline Job post created successfully")
}

func GetAllOfflineJobs(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)
	skip := (page - 1) * limit

	filter := bson.M{}
	if search != "" {
		filter = bson.M{"$or": []bson.M{
			{"postName": searchRegex(search)},
			{"description": searchRegex(search)},
			{"state": searchRegex(search)},
		}}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	total, err := offlinePostCollection.CountDocuments(ctx, filter)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Offline Job posts")
		return
	}
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := offlinePostCollection.Find(ctx, filter, opts)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Offline Job posts")
		return
	}
	defer cursor.Close(ctx)
	var posts []models.OfflinePost
	if err := cursor.All(ctx, &posts); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Offline Job posts")
		return
	}

	pageCount := int((total + int64(limit) - 1) / int64(limit))
	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"jobPosts":  posts,
		"total":     total,
		"page":      page,
		"pageCount": pageCount,
	}, "Job posts fetched successfully")
}

func GetOfflineJobByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Offline job post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var post models.OfflinePost
	if err := offlinePostCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Offline job post not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"offlineJob": post}, "")
}

func UpdateOfflineJobByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Offline job post not found")
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

	var post models.OfflinePost
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := offlinePostCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&post); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Offline job post not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"updatedJobPost": post}, "Offline form updated successfully")
}

func DeleteOfflineJobByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Offline job post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	result, err := offlinePostCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil || result.DeletedCount == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, "Offline job post not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{}, "Offline job post deleted successfully")
}
