package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"motohub-api/config"
	"motohub-api/models"
)

type SocialAuthController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewSocialAuthController(db *gorm.DB, cfg *config.Config) *SocialAuthController {
	return &SocialAuthController{
		db:  db,
		cfg: cfg,
	}
}

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type googleTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleLogin redirects the client to the Google consent screen
func (sac *SocialAuthController) GoogleLogin(c *gin.Context) {
	params := url.Values{}
	params.Set("client_id", sac.cfg.GoogleClientID)
	params.Set("redirect_uri", sac.cfg.GoogleRedirectURL)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")

	c.Redirect(http.StatusTemporaryRedirect, googleAuthURL+"?"+params.Encode())
}

// GoogleCallback exchanges the provider code for an access token,
// fetches the profile, upserts the local user keyed by email and issues
// the standard bearer token
func (sac *SocialAuthController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	accessToken, err := sac.exchangeCode(code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to exchange authorization code"})
		return
	}

	info, err := sac.fetchUserInfo(accessToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to fetch Google profile"})
		return
	}

	user, isNewUser, err := sac.findOrCreateUser(info)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process user"})
		return
	}

	token, err := GenerateJWT(sac.cfg.JWTSecret, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"user":        user,
		"is_new_user": isNewUser,
	})
}

func (sac *SocialAuthController) exchangeCode(code string) (string, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", sac.cfg.GoogleClientID)
	form.Set("client_secret", sac.cfg.GoogleClientSecret)
	form.Set("redirect_uri", sac.cfg.GoogleRedirectURL)
	form.Set("grant_type", "authorization_code")

	resp, err := http.PostForm(googleTokenURL, form)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var tokenResp googleTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", err
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}

	return tokenResp.AccessToken, nil
}

func (sac *SocialAuthController) fetchUserInfo(accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, fmt.Errorf("profile has no email")
	}

	return &info, nil
}

func (sac *SocialAuthController) findOrCreateUser(info *googleUserInfo) (*models.User, bool, error) {
	var user models.User
	err := sac.db.Where("email = ?", info.Email).First(&user).Error

	if err == nil {
		updates := map[string]interface{}{"google_id": info.ID}
		if info.Picture != "" {
			updates["avatar"] = info.Picture
		}
		if err := sac.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, false, err
		}
		user.GoogleID = &info.ID
		return &user, false, nil
	}

	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	var avatar *string
	if info.Picture != "" {
		avatar = &info.Picture
	}

	user = models.User{
		ID:        uuid.New().String(),
		Name:      info.Name,
		Email:     info.Email,
		Avatar:    avatar,
		Role:      models.RoleUser,
		GoogleID:  &info.ID,
		Favorites: models.StringSlice{},
	}
	if err := sac.db.Create(&user).Error; err != nil {
		return nil, false, err
	}

	return &user, true, nil
}
