package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// SearchResultsPerKind caps each collection's hits in a search response.
const SearchResultsPerKind = 5

var ErrEmptyQuery = errors.New("search query is required")

// SearchResult groups the fan-out hits by entity kind.
type SearchResult struct {
	Courses []models.Course `json:"courses"`
	Tasks   []models.Task   `json:"tasks"`
	Events  []models.Event  `json:"events"`
}

// SearchService fans a query out over the three searchable collections.
type SearchService struct {
	searchRepo repository.SearchRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(searchRepo repository.SearchRepository) *SearchService {
	return &SearchService{searchRepo: searchRepo}
}

// Search runs the three owner-scoped substring queries concurrently and
// joins them into one grouped result. The query must be non-empty.
func (s *SearchService) Search(ctx context.Context, userID uint64, query string) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	result := &SearchResult{
		Courses: []models.Course{},
		Tasks:   []models.Task{},
		Events:  []models.Event{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		courses, err := s.searchRepo.SearchCourses(gctx, userID, query, SearchResultsPerKind)
		if err != nil {
			return err
		}
		if courses != nil {
			result.Courses = courses
		}
		return nil
	})

	g.Go(func() error {
		tasks, err := s.searchRepo.SearchTasks(gctx, userID, query, SearchResultsPerKind)
		if err != nil {
			return err
		}
		if tasks != nil {
			result.Tasks = tasks
		}
		return nil
	})

	g.Go(func() error {
		events, err := s.searchRepo.SearchEvents(gctx, userID, query, SearchResultsPerKind)
		if err != nil {
			return err
		}
		if events != nil {
			result.Events = events
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return result, nil
}
