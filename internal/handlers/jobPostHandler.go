package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"naukrivacancy/database"
	"naukrivacancy/internal/cache"
	"naukrivacancy/internal/models"
	utilhttp "naukrivacancy/internal/utility/http"
)

var jobPostCollection *mongo.Collection = database.OpenCollection(database.Client, "jobpost")

// postCache backs every job post list endpoint. Write handlers call
// Clear so the next read repopulates from Mongo.
var postCache = cache.New(cache.TTL, time.Now)

func validateJobPost(post models.JobPost) string {
	return firstMissing([]requiredField{
		{"postName", strings.TrimSpace(post.PostName) != ""},
		{"description", strings.TrimSpace(post.Description) != ""},
		{"notificationLink", strings.TrimSpace(post.NotificationLink) != ""},
		{"importantDates", len(post.ImportantDates) > 0},
		{"applicationFee", len(post.ApplicationFee) > 0},
		{"ageLimit", len(post.AgeLimit) > 0},
		{"beginDate", !post.BeginDate.IsZero()},
	})
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func findJobPosts(ctx context.Context, filter bson.M, skip, limit int) (int64, []models.JobPost, error) {
	total, err := jobPostCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, err
	}
	opts := newestFirst().SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := jobPostCollection.Find(ctx, filter, opts)
	if err != nil {
		return 0, nil, err
	}
	defer cursor.Close(ctx)
	var posts []models.JobPost
	if err := cursor.All(ctx, &posts); err != nil {
		return 0, nil, err
	}
	return total, posts, nil
}

func findAllJobPosts(ctx context.Context, filter bson.M) ([]models.JobPost, error) {
	cursor, err := jobPostCollection.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var posts []models.JobPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func respondCachedPage(w http.ResponseWriter, pg cache.Page, page int, message string) {
	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"jobPosts":  pg.Posts,
		"total":     pg.Total,
		"page":      page,
		"pageCount": pg.PageCount,
	}, message)
}

func respondPostList(w http.ResponseWriter, posts []models.JobPost, total int64, page, limit int, message string) {
	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"jobPosts":  posts,
		"total":     total,
		"page":      page,
		"pageCount": int(math.Ceil(float64(total) / float64(limit))),
	}, message)
}

func CreateJobPost(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var post models.JobPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateJobPost(post); msg != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	if _, err := jobPostCollection.InsertOne(ctx, post); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to create job post")
		return
	}
	postCache.Clear()

	utilhttp.RespondSuccess(w, http.StatusCreated, map[string]interface{}{"jobPost": post}, "Job post created successfully")
}

// GetAllJobPosts serves the front page listing. Unlike the narrower
// projections it never returns 404 for an empty result.
func GetAllJobPosts(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 18)
	skip := (page - 1) * limit

	if pg, ok := postCache.Lookup(cache.All, search, skip, limit); ok {
		respondCachedPage(w, pg, page, "Job posts fetched successfully")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	filter := allJobsFilter(search)
	total, posts, err := findJobPosts(ctx, filter, skip, limit)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch job posts")
		return
	}

	if search == "" && page == 1 {
		if snapshot, err := findAllJobPosts(ctx, filter); err == nil {
			postCache.Store(cache.All, snapshot)
		}
	}

	respondPostList(w, posts, total, page, limit, "Job posts fetched successfully")
}

func GetJobPostByState(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	search := r.URL.Query().Get("searchQuery")
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 18)
	skip := (page - 1) * limit

	if pg, ok := postCache.LookupState(state, search, skip, limit); ok {
		respondCachedPage(w, pg, page, "Job posts fetched successfully")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	filter := byStateFilter(state, search)
	total, posts, err := findJobPosts(ctx, filter, skip, limit)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch job posts")
		return
	}
	if len(posts) == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, "No job posts found for this filter")
		return
	}

	if page == 1 {
		if snapshot, err := findAllJobPosts(ctx, filter); err == nil {
			postCache.StoreState(state, snapshot)
		}
	}

	respondPostList(w, posts, total, page, limit, "Job posts fetched successfully")
}

// listLinkPosts is the shared body of the link projection endpoints.
// The snapshot is only refilled for an unfiltered first page so a
// narrow search never becomes the cached view.
func listLinkPosts(w http.ResponseWriter, r *http.Request, proj cache.Projection, filter bson.M, search, notFoundMsg, successMsg string) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 18)
	skip := (page - 1) * limit

	if pg, ok := postCache.Lookup(proj, search, skip, limit); ok {
		respondCachedPage(w, pg, page, "Job posts fetched successfully")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	total, posts, err := findJobPosts(ctx, filter, skip, limit)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch job posts")
		return
	}
	if len(posts) == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, notFoundMsg)
		return
	}

	if search == "" && page == 1 {
		if snapshot, err := findAllJobPosts(ctx, filter); err == nil {
			postCache.Store(proj, snapshot)
		}
	}

	respondPostList(w, posts, total, page, limit, successMsg)
}

func GetJobPostByAdmitCardLink(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	listLinkPosts(w, r, cache.AdmitCard, linkFilter("admitCardLink", search), search,
		"No job posts found that have an AdmitCard value",
		"Job posts with AdmitCard value fetched successfully")
}

func GetJobPostByResultLink(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	listLinkPosts(w, r, cache.Result, linkFilter("resultLink", ""), search,
		"No job posts found for this result link",
		"Result Link posts fetched successfully")
}

func GetJobPostByAnswerKeyLink(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	listLinkPosts(w, r, cache.AnswerKey, linkFilter("answerKeyLink", ""), search,
		"No AnswerKey posts found for this answer key link",
		"AnswerKey Link posts fetched successfully")
}

func GetJobPostByAdmissionLink(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("searchQuery")
	listLinkPosts(w, r, cache.Admission, admissionLinkFilter(search), search,
		"No AdmissionLink posts found for this admission link",
		"AdmissionLink posts fetched successfully")
}

// GetJobPostByApplyLink filters by the postName query parameter, not
// searchQuery, which is what the shipped frontend sends here.
func GetJobPostByApplyLink(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("postName")
	listLinkPosts(w, r, cache.Apply, linkFilter("applyLink", ""), search,
		"No ApplyLink posts found for this apply link",
		"ApplyLink posts fetched successfully")
}

// GetJobWithoutApplyLink lists upcoming posts, the ones with neither
// an apply nor an admission link yet. This view is never cached.
func GetJobWithoutApplyLink(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)
	skip := (page - 1) * limit

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	total, posts, err := findJobPosts(ctx, upcomingFilter(), skip, limit)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch job posts")
		return
	}
	if len(posts) == 0 {
		utilhttp.RespondError(w, http.StatusNotFound, "No Upcoming posts found without apply link")
		return
	}

	respondPostList(w, posts, total, page, limit, "Upcoming posts fetched successfully")
}

// GetJobPostByName resolves a slug where spaces are encoded as '%'.
func GetJobPostByName(w http.ResponseWriter, r *http.Request) {
	postName := strings.ReplaceAll(chi.URLParam(r, "postName"), "%", " ")

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	posts, err := findAllJobPosts(ctx, byNameFilter(postName))
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to fetch job posts")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"jobPosts": posts}, "Job posts fetched successfully")
}

func GetJobPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Job post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var post models.JobPost
	if err := jobPostCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Job post not found")
		return
	}

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"jobPost": post}, "Job post fetched successfully")
}

func UpdateJobPostByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Job post not found")
		return
	}

	var post models.JobPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validateJobPost(post); msg != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"postName":            post.PostName,
		"description":         post.Description,
		"notificationLink":    post.NotificationLink,
		"importantDates":      post.ImportantDates,
		"applicationFee":      post.ApplicationFee,
		"ageLimit":            post.AgeLimit,
		"resultLink":          post.ResultLink,
		"admitCardLink":       post.AdmitCardLink,
		"applyLink":           post.ApplyLink,
		"answerKeyLink":       post.AnswerKeyLink,
		"admissionLink":       post.AdmissionLink,
		"informationSections": post.InformationSections,
		"state":               post.State,
		"beginDate":           post.BeginDate,
		"lastDate":            post.LastDate,
		"totalPost":           post.TotalPost,
		"updatedAt":           time.Now(),
	}}

	var updated models.JobPost
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := jobPostCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Job post not found")
		return
	}
	postCache.Clear()

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"updatedJobPost": updated}, "Job post updated successfully")
}

func DeleteJobPostByID(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "Id"))
	if err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Job post not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var deleted models.JobPost
	if err := jobPostCollection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		utilhttp.RespondError(w, http.StatusNotFound, "Job post not found")
		return
	}
	postCache.Clear()

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{"jobPost": deleted}, "Job post deleted successfully")
}
