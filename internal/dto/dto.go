// Package dto declares the JSON shapes the API returns, one struct per view.
package dto

import (
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
)

// Attribute is how tags and ingredients are rendered
type Attribute struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewAttribute(a models.Attribute) Attribute {
	return Attribute{ID: a.ID, Name: a.Name}
}

func NewAttributes(rows []models.Attribute) []Attribute {
	out := make([]Attribute, len(rows))
	for i, row := range rows {
		out[i] = NewAttribute(row)
	}
	return out
}

// Recipe is the list view: associations as id lists
type Recipe struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	TimeMinutes int    `json:"time_minutes"`
	Price       string `json:"price"`
	Link        string `json:"link"`
	Tags        []uint `json:"tags"`
	Ingredients []uint `json:"ingredients"`
}

func NewRecipe(r *models.Recipe) Recipe {
	return Recipe{
		ID:          r.ID,
		Name:        r.Name,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price.StringFixed(2),
		Link:        r.Link,
		Tags:        r.TagIDs(),
		Ingredients: r.IngredientIDs(),
	}
}

func NewRecipes(recipes []models.Recipe) []Recipe {
	out := make([]Recipe, len(recipes))
	for i := range recipes {
		out[i] = NewRecipe(&recipes[i])
	}
	return out
}

// RecipeDetail nests full tag and ingredient objects
type RecipeDetail struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	TimeMinutes int         `json:"time_minutes"`
	Price       string      `json:"price"`
	Link        string      `json:"link"`
	Image       *string     `json:"image"`
	Tags        []Attribute `json:"tags"`
	Ingredients []Attribute `json:"ingredients"`
}

func NewRecipeDetail(r *models.Recipe) RecipeDetail {
	tags := make([]Attribute, len(r.Tags))
	for i, t := range r.Tags {
		tags[i] = Attribute{ID: t.ID, Name: t.Name}
	}
	ingredients := make([]Attribute, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = Attribute{ID: ing.ID, Name: ing.Name}
	}

	return RecipeDetail{
		ID:          r.ID,
		Name:        r.Name,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price.StringFixed(2),
		Link:        r.Link,
		Image:       r.Image,
		Tags:        tags,
		Ingredients: ingredients,
	}
}

// User never exposes the password hash
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func NewUser(u *models.User) User {
	return User{Email: u.Email, Name: u.Name}
}

// Token is returned by the login endpoint
type Token struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

// Client lists a registered API client without its secret
type Client struct {
	ClientID    string    `json:"client_id"`
	Name        string    `json:"name"`
	Domain      string    `json:"domain,omitempty"`
	Scopes      string    `json:"scopes"`
	GrantTypes  string    `json:"grant_types"`
	RedirectURI string    `json:"redirect_uri,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewClient(c *models.OAuthClient) Client {
	return Client{
		ClientID:    c.ID,
		Name:        c.Name,
		Domain:      c.Domain,
		Scopes:      c.Scopes,
		GrantTypes:  c.GrantTypes,
		RedirectURI: c.RedirectURI,
		CreatedAt:   c.CreatedAt,
	}
}

// CreatedClient is only returned once, right after registration
type CreatedClient struct {
	Client
	ClientSecret string `json:"client_secret"`
}
