package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"github.com/go-playground/validator"

	"naukrivacancy/database"
	"naukrivacancy/internal/models"
	"naukrivacancy/internal/otp"
	"naukrivacancy/internal/utility"
	utilhttp "naukrivacancy/internal/utility/http"
)

var validate = validator.New()

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "user")

// CodeStore holds the verification codes issued by SendVerificationCode
// until Register or Login consumes them.
var CodeStore = otp.NewStore(otp.Expiration, time.Now)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Otp       string `json:"otp"`
}

type loginRequest struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

func setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   true,
	})
}

// SendVerificationCode mails a fresh OTP to the given address. Mail
// delivery failures are logged but do not fail the request, the code
// is already stored and a retry would just mint a new one.
func SendVerificationCode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	email := strings.TrimSpace(body.Email)
	if email == "" {
		email = strings.TrimSpace(r.URL.Query().Get("email"))
	}
	if email == "" {
		utilhttp.RespondError(w, http.StatusBadRequest, "Either email or phone number is required")
		return
	}

	code := CodeStore.Generate()
	CodeStore.Set(email, code)

	msg := fmt.Sprintf("Dear Candidate,\n\nYour one time password (OTP) is: %s\n\nPlease do not share this OTP with anyone for security reasons.\n\nRegards,\nTeam Naukri Vacancy", code)
	if err := utility.SendMail(msg, email, "One Time Password (OTP) from NAUKRI VACANCY"); err != nil {
		log.Printf("sending OTP mail to %s: %v", email, err)
	}

	utilhttp.RespondSuccess(w, http.StatusCreated, map[string]interface{}{"email": email}, "OTP sent successfully")
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	missing := firstMissing([]requiredField{
		{"firstName", strings.TrimSpace(req.FirstName) != ""},
		{"lastName", strings.TrimSpace(req.LastName) != ""},
		{"phone", strings.TrimSpace(req.Phone) != ""},
		{"email", strings.TrimSpace(req.Email) != ""},
		{"otp", strings.TrimSpace(req.Otp) != ""},
	})
	if missing != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, missing)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "error occurred while checking for the email")
		return
	}
	if count > 0 {
		utilhttp.RespondError(w, http.StatusConflict, "Email already exists")
		return
	}

	count, err = userCollection.CountDocuments(ctx, bson.M{"phone": req.Phone})
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "error occurred while checking for the phone number")
		return
	}
	if count > 0 {
		utilhttp.RespondError(w, http.StatusConflict, "Phone number already exists")
		return
	}

	if !CodeStore.Verify(req.Email, req.Otp) {
		utilhttp.RespondError(w, http.StatusUnauthorized, "Code is not Valid Try Again")
		return
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Role:      models.RoleUser,
		Subscribe: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if validationErr := validate.Struct(user); validationErr != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "User was not created")
		return
	}

	token, err := utility.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to generate access token")
		return
	}
	setAccessTokenCookie(w, token)

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"createdUser": user,
		"accessToken": token,
	}, "User created successfully")
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilhttp.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	missing := firstMissing([]requiredField{
		{"email", strings.TrimSpace(req.Email) != ""},
		{"otp", strings.TrimSpace(req.Otp) != ""},
	})
	if missing != "" {
		utilhttp.RespondError(w, http.StatusBadRequest, missing)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user); err != nil {
		utilhttp.RespondError(w, http.StatusUnauthorized, "You Don't have Account.Sigh Up ")
		return
	}

	if !CodeStore.Verify(req.Email, req.Otp) {
		utilhttp.RespondError(w, http.StatusUnauthorized, "Code is not Valid Try Again")
		return
	}

	token, err := utility.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		utilhttp.RespondError(w, http.StatusInternalServerError, "Failed to generate access token")
		return
	}
	setAccessTokenCookie(w, token)

	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"createdUser": user,
		"accessToken": token,
	}, "Login successful")
}

func Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
	})
	utilhttp.RespondSuccess(w, http.StatusOK, map[string]interface{}{}, "User logged out successfully")
}

func Profile(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		utilhttp.RespondError(w, http.StatusUnauthorized, "Unauthorized access")
		return
	}
	utilhttp.RespondSuccess(w, http.StatusOK, user, "User fetched successfully")
}
