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

var privateJobCollection *mongo.Collection = database.OpenCollection(database.Client, "privatejob")

func CreatePrivateJob(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var job models.PrivateJob
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	missing := firstMissing([]requiredField{
		{"postName", strings.TrimSpace(job.PostName) != ""},
		{"description", strings.TrimSpace(job.Description) != ""},
		{"location", strings.TrimSpace(job.Location) != ""},
		{"jobRole", strings.TrimSpace(job.JobRole) != ""},
		{"Requirement", len(job.Requirement) > 0},
	})
	if missing != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, missing)
		return
	}

	if strings.TrimSpace(job.Salary) == "" {
		job.Salary = "Not Disclosed"
	}

	now := time.Now()
	job.ID = primitive.NewObjectID()
	job.CreatedAt = now
	job.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	if _, err := privateJobCollection.InsertOne(ctx, job); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to create Private Job post")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusCreated, map[string]interface{}{"newJobPost": job}, "Private Job post created successfully")
}

func GetAllPrivateJobs(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	page := queryInt(r, "page", 1)
	limit := 20
	skip := (page - 1) * limit

	filter := bson.M{}
	if search != "" {
		filter = bson.M{"$or": []bson.M{
			{"postName": searchRegex(search)},
			{"description": searchRegex(search)},
			{"location": searchRegex(search)},
		}}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	total, err := privateJobCollection.CountDocuments(ctx, filter)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Private Job posts")
		return
	}
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := privateJobCollection.Find(ctx, filter, opts)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Private Job posts")
		return
	}
	defer cursor.Close(ctx)
	var jobs []models.PrivateJob
	if err := cursor.All(ctx, &jobs); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch Private Job posts")
		return
	}

	pageCount := int((total + int64(limit) - 1) / int64(limit))
	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"privateJob": jobs,
		"total":      total,
		"page":       page,
		"pageCount":  pageCount,
	}, "Private Job posts fetched successfully")
}

// GetPrivateJobByID requires a signed-in user but not an admin.
func GetPrivateJobByID(w http.ResponseWriter, r *http.Request) {
	if currentUser(r) == nil {
		utilhttp.RespondError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Private Job post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var job models.PrivateJob
	if err := privateJobCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Private Job post not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"jobPost": job}, "Private Job post fetched successfully")
}

func UpdatePrivateJobByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Private Job post not found")
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

	var job models.PrivateJob
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := privateJobCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&job); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Private Job post not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"jobPost": job}, "Private Job post updated successfully")
}

func DeletePrivateJobByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Private Job post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	result, err := privateJobCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil || result.DeletedCount == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, "Private Job post not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{}, "Private Job post deleted successfully")
}
