package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/starplan/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepositoryInterface interface {
	Create(ctx context.Context, doc *model.ResumeDocument) error
	FindByID(ctx context.Context, id string) (*model.ResumeDocument, error)
	List(ctx context.Context, userID string, page, pageSize int) ([]model.ResumeDocument, int64, error)
	Delete(ctx context.Context, id string) (*model.ResumeDocument, error)
}

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

func (r *ResumeRepository) Create(ctx context.Context, doc *model.ResumeDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *ResumeRepository) FindByID(ctx context.Context, id string) (*model.ResumeDocument, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrResumeNotFound
	}
	var doc model.ResumeDocument
	err = r.db.WithContext(ctx).First(&doc, "id = ?", parsed).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResumeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ResumeRepository) List(ctx context.Context, userID string, page, pageSize int) ([]model.ResumeDocument, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ResumeDocument{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	docs := []model.ResumeDocument{}
	err := query.Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&docs).Error
	return docs, total, err
}

func (r *ResumeRepository) Delete(ctx context.Context, id string) (*model.ResumeDocument, error) {
	doc, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.ResumeDocument{}, "id = ?", doc.ID).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// MemoryResumeRepository keeps resumes in process memory when no database is configured.
type MemoryResumeRepository struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]model.ResumeDocument
}

func NewMemoryResumeRepository() *MemoryResumeRepository {
	return &MemoryResumeRepository{docs: make(map[uuid.UUID]model.ResumeDocument)}
}

func (r *MemoryResumeRepository) Create(_ context.Context, doc *model.ResumeDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = *doc
	return nil
}

func (r *MemoryResumeRepository) FindByID(_ context.Context, id string) (*model.ResumeDocument, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrResumeNotFound
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[parsed]
	if !ok {
		return nil, ErrResumeNotFound
	}
	return &doc, nil
}

func (r *MemoryResumeRepository) List(_ context.Context, userID string, page, pageSize int) ([]model.ResumeDocument, int64, error) {
	r.mu.RLock()
	docs := make([]model.ResumeDocument, 0, len(r.docs))
	for _, doc := range r.docs {
		if userID == "" || doc.UserID == userID {
			docs = append(docs, doc)
		}
	}
	r.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	total := int64(len(docs))
	start := (page - 1) * pageSize
	if start < 0 || start >= len(docs) {
		return []model.ResumeDocument{}, total, nil
	}
	end := start + pageSize
	if end > len(docs) {
		end = len(docs)
	}
	return docs[start:end], total, nil
}

func (r *MemoryResumeRepository) Delete(_ context.Context, id string) (*model.ResumeDocument, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrResumeNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[parsed]
	if !ok {
		return nil, ErrResumeNotFound
	}
	delete(r.docs, parsed)
	return &doc, nil
}
