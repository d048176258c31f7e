package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"tokensite/internal/store"
)

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.news.ListPublishedArticles())
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid article id")
		return
	}
	article, ok := h.news.GetArticle(id)
	if !ok || !article.IsPublished {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

type createNewsRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Summary     string     `json:"summary"`
	Author      string     `json:"author"`
	PublishDate *time.Time `json:"publish_date"`
	IsPublished bool       `json:"is_published"`
	Tags        []string   `json:"tags"`
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req createNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(w, http.StatusBadRequest, "title and content are required")
		return
	}
	input := store.ArticleInput{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		Author:      req.Author,
		IsPublished: req.IsPublished,
		Tags:        req.Tags,
	}
	if req.PublishDate != nil {
		input.PublishDate = *req.PublishDate
	}
	respondJSON(w, http.StatusCreated, h.news.CreateArticle(input))
}

type updateNewsRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	Summary     *string    `json:"summary"`
	PublishDate *time.Time `json:"publish_date"`
	IsPublished *bool      `json:"is_published"`
	Tags        *[]string  `json:"tags"`
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid article id")
		return
	}
	var req updateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	article, ok := h.news.UpdateArticle(id, store.ArticleUpdate{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		PublishDate: req.PublishDate,
		IsPublished: req.IsPublished,
		Tags:        req.Tags,
	})
	if !ok {
		respondError(w, http.StatusNotFound, "article not found")
		return
	}
	respondJSON(w, http.StatusOK, article)
}
