// Package testhelpers provides an in-memory double of the recipe API for
// integration-style tests. Route shapes and wire formats mirror the real
// backend: mongo-style _id fields, populated author objects, and the
// with-details pagination envelope.
package testhelpers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const jwtSecret = "test-secret"

// UserRecord is a stored user in wire shape
type UserRecord struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Password string `json:"-"`
}

// RecipeRecord is a stored recipe in wire shape
type RecipeRecord struct {
	ID           string              `json:"_id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Image        *string             `json:"image"`
	PrepTime     int                 `json:"prepTime"`
	CookTime     int                 `json:"cookTime"`
	Servings     int                 `json:"servings"`
	Ingredients  []map[string]string `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	UserID       string              `json:"userId"`
}

type likeRecord struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	RecipeID  string    `json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
}

type commentRecord struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	UserID    string    `json:"-"`
	RecipeID  string    `json:"recipeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Server is an in-memory recipe API mounted on httptest
type Server struct {
	URL string

	// WrapComments controls whether POST/PUT /comments answers with a
	// wrapped {"comment": ...} or a bare object. The real backend has
	// done both; clients must accept either.
	WrapComments bool

	// GoogleUsers maps an opaque google credential to the email of the
	// user it signs in
	GoogleUsers map[string]string

	hs *httptest.Server

	mu       sync.Mutex
	users    []UserRecord
	recipes  []RecipeRecord
	likes    []likeRecord
	comments []commentRecord
}

// NewServer starts the fake API
func NewServer() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		WrapComments: true,
		GoogleUsers:  make(map[string]string),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.POST("/auth/register", s.register)
	router.POST("/auth/login", s.login)
	router.POST("/auth/google", s.googleLogin)

	router.GET("/recipes/with-details", s.listRecipesWithDetails)
	router.GET("/recipes/userRecipes/:id", s.listUserRecipes)
	router.GET("/recipes/:id", s.getRecipe)
	router.POST("/recipes", s.requireAuth, s.createRecipe)
	router.PUT("/recipes/:id", s.requireAuth, s.updateRecipe)
	router.DELETE("/recipes/:id", s.requireAuth, s.deleteRecipe)

	router.POST("/likes", s.requireAuth, s.addLike)
	router.DELETE("/likes", s.requireAuth, s.removeLike)
	router.GET("/likes/user/:id", s.likesByUser)
	router.GET("/likes/check/:userId/:recipeId", s.checkLike)

	router.GET("/comments/recipe/:id", s.commentsByRecipe)
	router.POST("/comments", s.requireAuth, s.createComment)
	router.PUT("/comments/:id", s.requireAuth, s.updateComment)
	router.DELETE("/comments/:id", s.requireAuth, s.deleteComment)

	router.GET("/users", s.listUsers)
	router.GET("/users/:id", s.getUser)
	router.PUT("/users/:id", s.requireAuth, s.updateUser)
	router.DELETE("/users/:id", s.requireAuth, s.deleteUser)

	router.POST("/api/chatgpt/suggest-recipes", s.suggestRecipes)

	s.hs = httptest.NewServer(router)
	s.URL = s.hs.URL
	return s
}

// Close shuts the fake API down
func (s *Server) Close() {
	s.hs.Close()
}

// SeedUser registers a user directly and returns it
func (s *Server) SeedUser(username, email, password string) UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := UserRecord{
		ID:        uuid.New().String(),
		Username:  username,
		Name:      username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.users = append(s.users, user)
	return user
}

// SeedRecipe stores a recipe directly and returns it
func (s *Server) SeedRecipe(title, description, ownerID string) RecipeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe := RecipeRecord{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		PrepTime:    10,
		CookTime:    20,
		Servings:    2,
		Ingredients: []map[string]string{{"amount": "1", "name": "ingredient"}},
		Instructions: []string{
			"step one",
		},
		UserID: ownerID,
	}
	s.recipes = append(s.recipes, recipe)
	return recipe
}

// SeedRecipes stores n generated recipes owned by ownerID
func (s *Server) SeedRecipes(n int, ownerID string) []RecipeRecord {
	recipes := make([]RecipeRecord, 0, n)
	for i := 0; i < n; i++ {
		recipes = append(recipes, s.SeedRecipe(
			fmt.Sprintf("Recipe %d", i+1),
			fmt.Sprintf("Description %d", i+1),
			ownerID,
		))
	}
	return recipes
}

// SeedLike records a like directly
func (s *Server) SeedLike(userID, recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes = append(s.likes, likeRecord{
		ID:        uuid.New().String(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	})
}

// TokenFor issues a signed token for a seeded user
func (s *Server) TokenFor(user UserRecord) string {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

func (s *Server) requireAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(authHeader[7:], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		c.Abort()
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	userID, _ := claims["id"].(string)
	c.Set("user_id", userID)
	c.Next()
}

func (s *Server) userByID(id string) (UserRecord, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return UserRecord{}, false
}

// detailedRecipe is a recipe with counts and a populated author, the shape
// served by with-details and the single-recipe endpoint
func (s *Server) detailedRecipe(r RecipeRecord) gin.H {
	likes := 0
	for _, l := range s.likes {
		if l.RecipeID == r.ID {
			likes++
		}
	}
	comments := 0
	for _, cm := range s.comments {
		if cm.RecipeID == r.ID {
			comments++
		}
	}

	out := gin.H{
		"_id":           r.ID,
		"title":         r.Title,
		"description":   r.Description,
		"image":         r.Image,
		"prepTime":      r.PrepTime,
		"cookTime":      r.CookTime,
		"servings":      r.Servings,
		"ingredients":   r.Ingredients,
		"instructions":  r.Instructions,
		"userId":        r.UserID,
		"likesCount":    likes,
		"commentsCount": comments,
	}
	if author, ok := s.userByID(r.UserID); ok {
		out["author"] = gin.H{"_id": author.ID, "name": author.Name, "username": author.Username}
	}
	return out
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Image    string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	s.mu.Lock()
	for _, u := range s.users {
		if u.Email == req.Email || u.Username == req.Username {
			s.mu.Unlock()
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
	}
	name := req.Name
	if name == "" {
		name = req.Username
	}
	user := UserRecord{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Name:      name,
		Email:     req.Email,
		Image:     req.Image,
		Password:  req.Password,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.users = append(s.users, user)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": s.TokenFor(user)})
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		match := (req.Email != "" && u.Email == req.Email) ||
			(req.Username != "" && u.Username == req.Username)
		if match && u.Password == req.Password {
			c.JSON(http.StatusOK, gin.H{"user": u, "token": s.TokenFor(u)})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
}

func (s *Server) googleLogin(c *gin.Context) {
	var req struct {
		Credential string `json:"credential"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.GoogleUsers[req.Credential]
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid google credential"})
		return
	}
	for _, u := range s.users {
		if u.Email == email {
			c.JSON(http.StatusOK, gin.H{"user": u, "token": s.TokenFor(u)})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown google user"})
}

func (s *Server) listRecipesWithDetails(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.recipes)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]gin.H, 0, end-start)
	for _, r := range s.recipes[start:end] {
		data = append(data, s.detailedRecipe(r))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"totalPages":  totalPages,
			"hasNextPage": page < totalPages,
			"hasPrevPage": page > 1,
		},
	})
}

func (s *Server) getRecipe(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recipes {
		if r.ID == c.Param("id") {
			c.JSON(http.StatusOK, s.detailedRecipe(r))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
}

func (s *Server) listUserRecipes(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gin.H, 0)
	for _, r := range s.recipes {
		if r.UserID == c.Param("id") {
			out = append(out, s.detailedRecipe(r))
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createRecipe(c *gin.Context) {
	var req RecipeRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = uuid.New().String()
	req.UserID = c.GetString("user_id")

	s.mu.Lock()
	s.recipes = append([]RecipeRecord{req}, s.recipes...)
	detailed := s.detailedRecipe(req)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, detailed)
}

func (s *Server) updateRecipe(c *gin.Context) {
	// partial update: only fields present in the body are touched
	var req struct {
		Title        *string             `json:"title"`
		Description  *string             `json:"description"`
		Image        *string             `json:"image"`
		PrepTime     *int                `json:"prepTime"`
		CookTime     *int                `json:"cookTime"`
		Servings     *int                `json:"servings"`
		Ingredients  []map[string]string `json:"ingredients"`
		Instructions []string            `json:"instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.recipes {
		if r.ID != c.Param("id") {
			continue
		}
		if req.Title != nil {
			s.recipes[i].Title = *req.Title
		}
		if req.Description != nil {
			s.recipes[i].Description = *req.Description
		}
		if req.Image != nil {
			s.recipes[i].Image = req.Image
		}
		if req.PrepTime != nil {
			s.recipes[i].PrepTime = *req.PrepTime
		}
		if req.CookTime != nil {
			s.recipes[i].CookTime = *req.CookTime
		}
		if req.Servings != nil {
			s.recipes[i].Servings = *req.Servings
		}
		if req.Ingredients != nil {
			s.recipes[i].Ingredients = req.Ingredients
		}
		if req.Instructions != nil {
			s.recipes[i].Instructions = req.Instructions
		}
		c.JSON(http.StatusOK, s.detailedRecipe(s.recipes[i]))
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
}

func (s *Server) deleteRecipe(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.recipes {
		if r.ID == c.Param("id") {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully", "id": r.ID})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
}

func (s *Server) addLike(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId"`
		RecipeID string `json:"recipeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.UserID == req.UserID && l.RecipeID == req.RecipeID {
			c.JSON(http.StatusConflict, gin.H{"error": "already liked"})
			return
		}
	}
	s.likes = append(s.likes, likeRecord{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		RecipeID:  req.RecipeID,
		CreatedAt: time.Now(),
	})
	c.JSON(http.StatusCreated, gin.H{"message": "liked"})
}

func (s *Server) removeLike(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId"`
		RecipeID string `json:"recipeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.likes {
		if l.UserID == req.UserID && l.RecipeID == req.RecipeID {
			s.likes = append(s.likes[:i], s.likes[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "unliked"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "like not found"})
}

func (s *Server) likesByUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gin.H, 0)
	for _, l := range s.likes {
		if l.UserID != c.Param("id") {
			continue
		}
		entry := gin.H{"_id": l.ID, "createdAt": l.CreatedAt}
		found := false
		for _, r := range s.recipes {
			if r.ID == l.RecipeID {
				entry["recipeId"] = s.detailedRecipe(r)
				found = true
				break
			}
		}
		if !found {
			// deleted recipe: the reference stays a bare id
			entry["recipeId"] = l.RecipeID
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) checkLike(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.UserID == c.Param("userId") && l.RecipeID == c.Param("recipeId") {
			c.JSON(http.StatusOK, gin.H{"liked": true})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"liked": false})
}

func (s *Server) commentView(cm commentRecord) gin.H {
	author := gin.H{"_id": cm.UserID}
	if u, ok := s.userByID(cm.UserID); ok {
		author["name"] = u.Name
		if u.Image != "" {
			author["image"] = u.Image
		}
	}
	return gin.H{
		"_id":       cm.ID,
		"text":      cm.Text,
		"userId":    author,
		"recipeId":  cm.RecipeID,
		"createdAt": cm.CreatedAt,
		"updatedAt": cm.UpdatedAt,
	}
}

func (s *Server) commentsByRecipe(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]gin.H, 0)
	for _, cm := range s.comments {
		if cm.RecipeID == c.Param("id") {
			out = append(out, s.commentView(cm))
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createComment(c *gin.Context) {
	var req struct {
		Text     string `json:"text"`
		UserID   string `json:"userId"`
		RecipeID string `json:"recipeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	s.mu.Lock()
	cm := commentRecord{
		ID:        uuid.New().String(),
		Text:      req.Text,
		UserID:    req.UserID,
		RecipeID:  req.RecipeID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.comments = append(s.comments, cm)
	view := s.commentView(cm)
	s.mu.Unlock()

	if s.WrapComments {
		c.JSON(http.StatusCreated, gin.H{"comment": view})
	} else {
		c.JSON(http.StatusCreated, view)
	}
}

func (s *Server) updateComment(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cm := range s.comments {
		if cm.ID == c.Param("id") {
			s.comments[i].Text = req.Text
			s.comments[i].UpdatedAt = time.Now()
			view := s.commentView(s.comments[i])
			if s.WrapComments {
				c.JSON(http.StatusOK, gin.H{"comment": view})
			} else {
				c.JSON(http.StatusOK, view)
			}
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
}

func (s *Server) deleteComment(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cm := range s.comments {
		if cm.ID == c.Param("id") {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.users)
}

func (s *Server) getUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.userByID(c.Param("id")); ok {
		c.JSON(http.StatusOK, u)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
}

func (s *Server) updateUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Image    string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID != c.Param("id") {
			continue
		}
		if req.Username != "" {
			s.users[i].Username = req.Username
		}
		if req.Name != "" {
			s.users[i].Name = req.Name
		}
		if req.Email != "" {
			s.users[i].Email = req.Email
		}
		if req.Password != "" {
			s.users[i].Password = req.Password
		}
		if req.Image != "" {
			s.users[i].Image = req.Image
		}
		s.users[i].UpdatedAt = time.Now()
		c.JSON(http.StatusOK, gin.H{"message": "user updated", "user": s.users[i]})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
}

func (s *Server) deleteUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == c.Param("id") {
			s.users = append(s.users[:i], s.users[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
}

func (s *Server) suggestRecipes(c *gin.Context) {
	var req struct {
		Input string `json:"input"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is required"})
		return
	}

	// canned suggestions, already in the client's domain shape
	recipes := []gin.H{
		{
			"id":          uuid.New().String(),
			"title":       "Suggested " + req.Input,
			"description": "An AI suggestion for " + req.Input,
			"creator":     gin.H{"name": "Chef AI"},
			"prepMinutes": 5,
			"cookMinutes": 15,
			"servings":    2,
			"likes":       0,
			"ingredients": []gin.H{{"amount": "1", "name": req.Input}},
			"steps":       []string{"Cook the " + req.Input},
		},
		{
			"id":          uuid.New().String(),
			"title":       "Another take on " + req.Input,
			"description": "A second AI suggestion",
			"creator":     gin.H{"name": "Chef AI"},
			"prepMinutes": 10,
			"cookMinutes": 25,
			"servings":    4,
			"likes":       0,
			"ingredients": []gin.H{{"amount": "2", "name": req.Input}},
			"steps":       []string{"Prepare the " + req.Input, "Serve"},
		},
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
