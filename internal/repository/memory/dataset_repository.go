package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"zeus-ai-be/pkg/store"
)

// DatasetRepository holds uploaded datasets in a TTL cache. Datasets are
// demo-scale JSON catalogs, so process memory with expiry is the whole
// persistence story.
type DatasetRepository struct {
	cache *cache.Cache
}

func NewDatasetRepository() *DatasetRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &DatasetRepository{
		cache: c,
	}
}

func (r *DatasetRepository) Save(dataset *store.Dataset) string {
	id := uuid.NewString()
	r.cache.Set(id, dataset, cache.DefaultExpiration)
	return id
}

func (r *DatasetRepository) Get(id string) (*store.Dataset, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Dataset), true
	}
	return nil, false
}

func (r *DatasetRepository) Delete(id string) {
	r.cache.Delete(id)
}
