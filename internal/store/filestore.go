package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gigbook/gig-import/internal/fileutils"
	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/parsererror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

const (
	payersFile  = "payers.yaml"
	gigsFile    = "gigs.yaml"
	batchesFile = "batches.yaml"
)

// FileStore is a YAML-file-backed Store. Each entity kind lives in its own
// file under the data directory; every operation loads, mutates, and saves
// the whole file under a single mutex.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func loadFile[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var items []T
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return items, nil
}

func saveFile[T any](path string, items []T) error {
	data, err := yaml.Marshal(items)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// CreatePayer persists a new payer and returns it with its assigned id.
func (s *FileStore) CreatePayer(ctx context.Context, payer models.Payer) (models.Payer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payers, err := loadFile[models.Payer](s.path(payersFile))
	if err != nil {
		return models.Payer{}, err
	}

	payer.ID = uuid.NewString()
	payers = append(payers, payer)

	if err := saveFile(s.path(payersFile), payers); err != nil {
		return models.Payer{}, err
	}

	log.WithFields(logrus.Fields{"payer": payer.Name, "id": payer.ID}).Debug("Created payer")
	return payer, nil
}

// ListPayers returns all payers belonging to the user.
func (s *FileStore) ListPayers(ctx context.Context, userID string) ([]models.Payer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payers, err := loadFile[models.Payer](s.path(payersFile))
	if err != nil {
		return nil, err
	}

	var out []models.Payer
	for _, p := range payers {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListPayersByBatch returns payers created by the given import batch.
func (s *FileStore) ListPayersByBatch(ctx context.Context, userID, batchID string) ([]models.Payer, error) {
	payers, err := s.ListPayers(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []models.Payer
	for _, p := range payers {
		if p.BatchTag == batchID {
			out = append(out, p)
		}
	}
	return out, nil
}

// DeletePayer removes a payer by id.
func (s *FileStore) DeletePayer(ctx context.Context, userID, payerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payers, err := loadFile[models.Payer](s.path(payersFile))
	if err != nil {
		return err
	}

	kept := payers[:0]
	found := false
	for _, p := range payers {
		if p.UserID == userID && p.ID == payerID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return &parsererror.NotFoundError{Entity: "payer", ID: payerID}
	}

	return saveFile(s.path(payersFile), kept)
}

// CountGigsByPayer returns the number of gigs referencing a payer.
func (s *FileStore) CountGigsByPayer(ctx context.Context, userID, payerID string) (int, error) {
	gigs, err := s.ListGigs(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, g := range gigs {
		if g.PayerID == payerID {
			count++
		}
	}
	return count, nil
}

// CreateGig persists a new gig and returns it with its assigned id.
func (s *FileStore) CreateGig(ctx context.Context, gig models.Gig) (models.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gigs, err := loadFile[models.Gig](s.path(gigsFile))
	if err != nil {
		return models.Gig{}, err
	}

	gig.ID = uuid.NewString()
	gigs = append(gigs, gig)

	if err := saveFile(s.path(gigsFile), gigs); err != nil {
		return models.Gig{}, err
	}
	return gig, nil
}

// ListGigs returns all gigs belonging to the user.
func (s *FileStore) ListGigs(ctx context.Context, userID string) ([]models.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gigs, err := loadFile[models.Gig](s.path(gigsFile))
	if err != nil {
		return nil, err
	}

	var out []models.Gig
	for _, g := range gigs {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

// ListGigsByBatch returns gigs tagged with the given import batch id.
func (s *FileStore) ListGigsByBatch(ctx context.Context, userID, batchID string) ([]models.Gig, error) {
	gigs, err := s.ListGigs(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []models.Gig
	for _, g := range gigs {
		if g.BatchTag == batchID {
			out = append(out, g)
		}
	}
	return out, nil
}

// DeleteGig removes a gig by id.
func (s *FileStore) DeleteGig(ctx context.Context, userID, gigID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gigs, err := loadFile[models.Gig](s.path(gigsFile))
	if err != nil {
		return err
	}

	kept := gigs[:0]
	found := false
	for _, g := range gigs {
		if g.UserID == userID && g.ID == gigID {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return &parsererror.NotFoundError{Entity: "gig", ID: gigID}
	}

	return saveFile(s.path(gigsFile), kept)
}

// CreateBatch persists a new import batch and returns it with its id.
func (s *FileStore) CreateBatch(ctx context.Context, batch models.ImportBatch) (models.ImportBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batches, err := loadFile[models.ImportBatch](s.path(batchesFile))
	if err != nil {
		return models.ImportBatch{}, err
	}

	batch.ID = uuid.NewString()
	batches = append(batches, batch)

	if err := saveFile(s.path(batchesFile), batches); err != nil {
		return models.ImportBatch{}, err
	}
	return batch, nil
}

// UpdateBatch replaces an existing batch record.
func (s *FileStore) UpdateBatch(ctx context.Context, batch models.ImportBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batches, err := loadFile[models.ImportBatch](s.path(batchesFile))
	if err != nil {
		return err
	}

	for i, b := range batches {
		if b.UserID == batch.UserID && b.ID == batch.ID {
			batches[i] = batch
			return saveFile(s.path(batchesFile), batches)
		}
	}
	return &parsererror.NotFoundError{Entity: "batch", ID: batch.ID}
}

// GetBatch returns one batch by id.
func (s *FileStore) GetBatch(ctx context.Context, userID, batchID string) (models.ImportBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batches, err := loadFile[models.ImportBatch](s.path(batchesFile))
	if err != nil {
		return models.ImportBatch{}, err
	}

	for _, b := range batches {
		if b.UserID == userID && b.ID == batchID {
			return b, nil
		}
	}
	return models.ImportBatch{}, &parsererror.NotFoundError{Entity: "batch", ID: batchID}
}

// ListBatches returns all batches belonging to the user.
func (s *FileStore) ListBatches(ctx context.Context, userID string) ([]models.ImportBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batches, err := loadFile[models.ImportBatch](s.path(batchesFile))
	if err != nil {
		return nil, err
	}

	var out []models.ImportBatch
	for _, b := range batches {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// DeleteBatch removes a batch record by id.
func (s *FileStore) DeleteBatch(ctx context.Context, userID, batchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batches, err := loadFile[models.ImportBatch](s.path(batchesFile))
	if err != nil {
		return err
	}

	kept := batches[:0]
	found := false
	for _, b := range batches {
		if b.UserID == userID && b.ID == batchID {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return &parsererror.NotFoundError{Entity: "batch", ID: batchID}
	}

	return saveFile(s.path(batchesFile), kept)
}
