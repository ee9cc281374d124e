package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/meinhoongagan/ai-receptionist/models"
	"github.com/meinhoongagan/ai-receptionist/service"
	"github.com/meinhoongagan/ai-receptionist/session"
	"github.com/meinhoongagan/ai-receptionist/store"
	"github.com/meinhoongagan/ai-receptionist/utils"
)

type AuthController struct {
	accounts  *service.AccountService
	creds     *store.CredentialStore
	blacklist *session.Blacklist
	secret    string
}

func NewAuthController(accounts *service.AccountService, creds *store.CredentialStore, blacklist *session.Blacklist, secret string) *AuthController {
	return &AuthController{accounts: accounts, creds: creds, blacklist: blacklist, secret: secret}
}

// Register handles signup. Multipart form: email, password and an optional
// "face" image capture. An image with no detectable face still creates the
// account, without face data.
func (a *AuthController) Register(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	var faceImage []byte
	if file, err := c.FormFile("face"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot read face image",
			})
		}
		faceImage, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot read face image",
			})
		}
	}

	user, err := a.accounts.SignUp(c.Context(), email, password, faceImage)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create user",
			Error:   err.Error(),
		})
	}

	resp := fiber.Map{"user": user}
	if len(faceImage) > 0 && !user.HasFace() {
		resp["warning"] = "No face detected. Your account was created without face data."
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles email + password authentication.
func (a *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	ok, err := a.accounts.LogInWithPassword(c.Context(), input.Email, input.Password)
	if err != nil {
		log.Printf("Login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	return a.issueTokens(c, input.Email)
}

// LoginWithFace handles face authentication. Multipart form: email and a
// "face" image capture. No match, no stored face data and no detected face
// all come back as the same 401.
func (a *AuthController) LoginWithFace(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing email",
		})
	}

	file, err := c.FormFile("face")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing face image",
		})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read face image",
		})
	}
	faceImage, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read face image",
		})
	}

	ok, err := a.accounts.LogInWithFace(c.Context(), email, faceImage)
	if err != nil {
		log.Printf("Face login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Face login failed: no match or user doesn't have face data",
		})
	}

	return a.issueTokens(c, email)
}

// GetUserProfile returns the current user's profile
func (a *AuthController) GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := a.creds.FindByID(c.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch profile",
		})
	}

	return c.JSON(fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"has_face":   user.HasFace(),
		"avatar_url": user.AvatarURL,
	})
}

// UpdateProfilePicture uploads the captured snapshot to cloudinary and stores
// the URL on the account.
func (a *AuthController) UpdateProfilePicture(c *fiber.Ctx) error {
	if !utils.CloudinaryEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Image uploads are not configured",
		})
	}

	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing picture",
		})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read picture",
		})
	}
	defer f.Close()

	url, err := utils.UploadToCloudinary(c.Context(), f, fmt.Sprintf("user_%d", userID), "profile_pictures")
	if err != nil {
		log.Printf("Cloudinary upload error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload picture",
		})
	}

	if err := a.creds.SetAvatarURL(c.Context(), userID, url); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save picture URL",
		})
	}

	return c.JSON(fiber.Map{"avatar_url": url})
}

// Logout blacklists the presented token until its natural expiry. Without a
// blacklist JWTs are stateless and logout is a client-side affair.
func (a *AuthController) Logout(c *fiber.Ctx) error {
	if a.blacklist != nil {
		token := c.Locals("user").(*jwt.Token)
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				if err := a.blacklist.Revoke(c.Context(), token.Raw, time.Unix(int64(exp), 0)); err != nil {
					log.Printf("Failed to revoke token: %v", err)
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"error": "Failed to log out",
					})
				}
			}
		}
	}
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// RefreshToken generates a new access token using a refresh token
func (a *AuthController) RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(a.secret), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	newClaims := jwt.MapClaims{
		"id":    claims["id"],
		"email": claims["email"],
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString([]byte(a.secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}

// issueTokens looks the account up and answers with access + refresh tokens,
// shared by both login modes.
func (a *AuthController) issueTokens(c *fiber.Ctx, email string) error {
	user, err := a.creds.FindByEmail(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch user",
		})
	}

	accessToken, err := a.signToken(user, time.Hour*24)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}
	refreshToken, err := a.signToken(user, time.Hour*24*7)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate refresh token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        accessToken,
		"refreshToken": refreshToken,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func (a *AuthController) signToken(user *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.secret))
}
