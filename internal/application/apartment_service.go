package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	repo "github.com/nestorahq/nestora-api/internal/domain/repository"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

// PageSize is the fixed apartment listing page size.
const PageSize = 6

// ApartmentService serves inventory listings, full-text search, and photo
// uploads.
type ApartmentService struct {
	Repo      repo.ApartmentRepository
	GCS       *storage.Client
	GCSBucket string
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func NewApartmentService(r repo.ApartmentRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ApartmentService {
	return &ApartmentService{Repo: r, GCS: gcs, GCSBucket: gcsBucket, ES: es, ESIndex: esIndex, Logger: logger}
}

// List returns one page of apartments plus the total count under the same
// rent filter. Page is 1-indexed; out-of-range pages return an empty slice.
func (s *ApartmentService) List(ctx context.Context, page, minRent, maxRent int) ([]entity.Apartment, int64, error) {
	if page < 1 {
		page = 1
	}
	f := repo.ApartmentFilter{MinRent: minRent, MaxRent: maxRent}
	total, err := s.Repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.Repo.List(ctx, f, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// AddPhoto uploads an apartment photo to GCS, appends its public URL to
// the record, and refreshes the search index.
func (s *ApartmentService) AddPhoto(ctx context.Context, apartmentID string, r io.Reader, filename, contentType string) (string, error) {
	apt, err := s.Repo.GetByID(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("apartments", apt.ID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Repo.AddPhotoURL(ctx, apt.ID, url); err != nil {
		return "", err
	}

	apt.PhotoURLs = append(apt.PhotoURLs, url)
	_ = s.Index(ctx, apt)
	return url, nil
}

// Index writes an apartment document into the search index.
func (s *ApartmentService) Index(ctx context.Context, a *entity.Apartment) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":           a.ID,
		"floor_no":     a.FloorNo,
		"block_name":   a.BlockName,
		"apartment_no": a.ApartmentNo,
		"rent":         a.Rent,
		"available":    a.Available,
		"photo_urls":   a.PhotoURLs,
		"created_at":   a.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: a.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("apartment_id", a.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("apartment_id", a.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over block and apartment numbers.
func (s *ApartmentService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"block_name^2", "apartment_no"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
