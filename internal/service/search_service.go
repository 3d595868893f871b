package service

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/infra/elasticsearch"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	movieRepo *repository.MovieRepository
}

func NewSearchService(movieRepo *repository.MovieRepository) *SearchService {
	return &SearchService{movieRepo: movieRepo}
}

// SearchMovies runs a catalog search. Elasticsearch serves the query when it
// is up; otherwise the database answers with a plain substring match, without
// relevance ranking or rating data.
func (s *SearchService) SearchMovies(ctx context.Context, req *dto.SearchMovieRequest) (*dto.SearchMovieData, error) {
	if elasticsearch.Get() != nil {
		data, err := s.searchES(ctx, req)
		if err == nil {
			return data, nil
		}
		logger.Warn("Search index query failed, falling back to database",
			zap.String("q", req.Q),
			zap.Error(err),
		)
	}
	return s.searchDB(req)
}

func (s *SearchService) searchES(ctx context.Context, req *dto.SearchMovieRequest) (*dto.SearchMovieData, error) {
	query := buildMovieQuery(req)
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := elasticsearch.Search(ctx, elasticsearch.MoviesIndexName(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, &esSearchError{status: resp.String()}
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source    elasticsearch.ESMovieDoc `json:"_source"`
				Highlight map[string][]string      `json:"highlight"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	items := make([]dto.SearchMovieInfo, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		info := docToSearchInfo(&hit.Source)
		info.Highlight = hit.Highlight
		items = append(items, info)
	}

	return &dto.SearchMovieData{
		Movies:     items,
		Total:      result.Hits.Total.Value,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages(result.Hits.Total.Value, req.PageSize),
	}, nil
}

// buildMovieQuery assembles the ES request body. Title matches weigh three
// times a description match.
func buildMovieQuery(req *dto.SearchMovieRequest) map[string]interface{} {
	boolQuery := make(map[string]interface{})

	if req.Q != "" {
		boolQuery["must"] = []interface{}{
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":  req.Q,
					"fields": []string{"title^3", "description"},
				},
			},
		}
	} else {
		boolQuery["must"] = []interface{}{
			map[string]interface{}{"match_all": map[string]interface{}{}},
		}
	}

	var filters []interface{}
	if req.Genre != nil && *req.Genre != "" && *req.Genre != "all" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"genre": *req.Genre},
		})
	}
	if req.YearFrom != nil || req.YearTo != nil {
		yearRange := make(map[string]interface{})
		if req.YearFrom != nil {
			yearRange["gte"] = *req.YearFrom
		}
		if req.YearTo != nil {
			yearRange["lte"] = *req.YearTo
		}
		filters = append(filters, map[string]interface{}{
			"range": map[string]interface{}{"year": yearRange},
		})
	}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"from":  (req.Page - 1) * req.PageSize,
		"size":  req.PageSize,
		"highlight": map[string]interface{}{
			"fields": map[string]interface{}{
				"title":       map[string]interface{}{},
				"description": map[string]interface{}{},
			},
		},
	}

	switch req.Sort {
	case "rating":
		query["sort"] = []interface{}{
			map[string]interface{}{"rating_average": map[string]interface{}{"order": "desc", "missing": "_last"}},
			map[string]interface{}{"rating_count": map[string]interface{}{"order": "desc"}},
		}
	case "year":
		query["sort"] = []interface{}{
			map[string]interface{}{"year": map[string]interface{}{"order": "desc"}},
		}
	}

	return query
}

func (s *SearchService) searchDB(req *dto.SearchMovieRequest) (*dto.SearchMovieData, error) {
	skip := (req.Page - 1) * req.PageSize

	movies, total, err := s.movieRepo.Search(skip, req.PageSize, req.Q, req.Genre)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SearchMovieInfo, 0, len(movies))
	for i := range movies {
		items = append(items, dto.SearchMovieInfo{MovieInfo: toMovieInfo(&movies[i])})
	}

	return &dto.SearchMovieData{
		Movies:     items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages(total, req.PageSize),
	}, nil
}

func docToSearchInfo(doc *elasticsearch.ESMovieDoc) dto.SearchMovieInfo {
	info := dto.SearchMovieInfo{
		MovieInfo: dto.MovieInfo{
			ID:    doc.ID,
			Title: doc.Title,
			Genre: doc.Genre,
			Year:  doc.Year,
		},
		RatingCount:   doc.RatingCount,
		RatingAverage: doc.RatingAverage,
	}
	if doc.Description != "" {
		description := doc.Description
		info.Description = &description
	}
	if doc.PosterURL != "" {
		posterURL := doc.PosterURL
		info.PosterURL = &posterURL
	}
	if t, err := time.Parse(time.RFC3339, doc.CreatedAt); err == nil {
		info.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, doc.UpdatedAt); err == nil {
		info.UpdatedAt = t
	}
	return info
}

type esSearchError struct {
	status string
}

func (e *esSearchError) Error() string {
	return "elasticsearch query failed: " + e.status
}
