package store

import (
	"sort"
	"time"

	"tokensite/internal/models"
)

type ArticleInput struct {
	Title       string
	Content     string
	Summary     string
	Author      string
	PublishDate time.Time
	IsPublished bool
	Tags        []string
}

type ArticleUpdate struct {
	Title       *string
	Content     *string
	Summary     *string
	PublishDate *time.Time
	IsPublished *bool
	Tags        *[]string
}

func (s *Store) CreateArticle(input ArticleInput) models.NewsArticle {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	publishDate := input.PublishDate
	if publishDate.IsZero() {
		publishDate = now
	}
	article := &models.NewsArticle{
		ID:          nextID(&s.articleSeq),
		Title:       input.Title,
		Content:     input.Content,
		Summary:     input.Summary,
		Author:      input.Author,
		PublishDate: publishDate,
		IsPublished: input.IsPublished,
		Tags:        input.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.articles[article.ID] = article
	return *article
}

func (s *Store) GetArticle(id int64) (models.NewsArticle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	article, ok := s.articles[id]
	if !ok {
		return models.NewsArticle{}, false
	}
	return *article, true
}

func (s *Store) UpdateArticle(id int64, update ArticleUpdate) (models.NewsArticle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	article, ok := s.articles[id]
	if !ok {
		return models.NewsArticle{}, false
	}
	if update.Title != nil {
		article.Title = *update.Title
	}
	if update.Content != nil {
		article.Content = *update.Content
	}
	if update.Summary != nil {
		article.Summary = *update.Summary
	}
	if update.PublishDate != nil {
		article.PublishDate = *update.PublishDate
	}
	if update.IsPublished != nil {
		article.IsPublished = *update.IsPublished
	}
	if update.Tags != nil {
		article.Tags = *update.Tags
	}
	article.UpdatedAt = s.now()
	return *article, true
}

// ListPublishedArticles returns published articles newest first.
func (s *Store) ListPublishedArticles() []models.NewsArticle {
	s.mu.Lock()
	defer s.mu.Unlock()
	articles := make([]models.NewsArticle, 0)
	for _, article := range s.articles {
		if article.IsPublished {
			articles = append(articles, *article)
		}
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishDate.After(articles[j].PublishDate)
	})
	return articles
}

func (s *Store) ListArticles() []models.NewsArticle {
	s.mu.Lock()
	defer s.mu.Unlock()
	articles := make([]models.NewsArticle, 0, len(s.articles))
	for _, article := range s.articles {
		articles = append(articles, *article)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })
	return articles
}
