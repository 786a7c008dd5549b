package uploads

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/agencydesk/go-dealer-admin/files"
	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

// Validation errors. Both refuse an upload before any request is issued.
var (
	ErrEmptyBatch         = errors.New("no files staged for upload")
	ErrCarRequiresRelated = errors.New("a car must be chosen for car files")
)

// State of the pending batch: Idle -> Staged -> Uploading -> Idle.
type State int

const (
	StateIdle State = iota
	StateStaged
	StateUploading
)

// StagedFile is a local file waiting to be uploaded.
type StagedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// API is the slice of the backend the batch depends on.
type API interface {
	UploadFile(ctx context.Context, agencyID string, category files.Category, relatedID string, f StagedFile) (files.MediaFile, error)
}

// ActiveSource reports the currently selected agency.
type ActiveSource interface {
	ActiveAgencyID() (string, bool)
}

// Batch manages the pending selection of local files for the files screen.
// Staging from the picker and from drag-and-drop both append to the same
// list; duplicates by name are kept and both upload.
type Batch struct {
	id     string
	api    API
	active ActiveSource
	log    zerolog.Logger

	lock      sync.Mutex
	staged    []StagedFile
	category  files.Category
	relatedID string
	state     State

	onUploaded []func(category files.Category)
}

func NewBatch(api API, active ActiveSource, log zerolog.Logger) *Batch {
	return &Batch{
		id:       uuid.New().String(),
		api:      api,
		active:   active,
		log:      log.With().Str("component", "uploads").Logger(),
		category: files.CategoryAgency,
	}
}

// Stage appends files to the pending batch.
func (b *Batch) Stage(staged ...StagedFile) {
	if len(staged) == 0 {
		return
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	b.staged = append(b.staged, staged...)
	b.state = StateStaged
}

func (b *Batch) SetCategory(category files.Category) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.category = category
}

func (b *Batch) SetRelatedID(id string) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.relatedID = id
}

func (b *Batch) Category() files.Category {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.category
}

func (b *Batch) RelatedID() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.relatedID
}

// Staged returns the pending files.
func (b *Batch) Staged() []StagedFile {
	b.lock.Lock()
	defer b.lock.Unlock()
	out := make([]StagedFile, len(b.staged))
	copy(out, b.staged)
	return out
}

func (b *Batch) State() State {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.state
}

// Clear drops the pending batch.
func (b *Batch) Clear() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.staged = nil
	b.relatedID = ""
	b.state = StateIdle
}

// Validate checks the batch preconditions without touching the network.
func (b *Batch) Validate() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.validateLocked()
}

func (b *Batch) validateLocked() error {
	if len(b.staged) == 0 {
		return ErrEmptyBatch
	}
	if b.category == files.CategoryCar && b.relatedID == "" {
		return ErrCarRequiresRelated
	}
	return nil
}

// OnUploaded registers a hook run after a fully successful upload, with the
// batch's category. The files screen uses it to re-fetch the attachment
// list and, for car uploads, the vehicle list.
func (b *Batch) OnUploaded(fn func(category files.Category)) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.onUploaded = append(b.onUploaded, fn)
}

// Upload sends the staged files sequentially, one request per file. The
// first failure aborts the remaining uploads and surfaces the backend's
// error; files uploaded before the failure stay uploaded. The failed file
// and the unattempted remainder stay staged, while the uploaded prefix is
// removed so a retry cannot duplicate uploads.
//
// Returns how many files were uploaded.
func (b *Batch) Upload(ctx context.Context) (int, error) {
	b.lock.Lock()
	if err := b.validateLocked(); err != nil {
		b.lock.Unlock()
		return 0, err
	}
	agencyID, ok := b.active.ActiveAgencyID()
	if !ok {
		b.lock.Unlock()
		return 0, apperrors.ErrNoActiveAgency
	}
	pending := make([]StagedFile, len(b.staged))
	copy(pending, b.staged)
	category := b.category
	relatedID := b.relatedID
	b.state = StateUploading
	b.lock.Unlock()

	for i, f := range pending {
		if _, err := b.api.UploadFile(ctx, agencyID, category, relatedID, f); err != nil {
			b.lock.Lock()
			b.staged = pending[i:]
			b.state = StateStaged
			b.lock.Unlock()
			b.log.Err(err).
				Str("batch_id", b.id).
				Str("file", f.Name).
				Int("uploaded", i).
				Int("total", len(pending)).
				Msg("upload aborted")
			return i, pkgerrors.Wrapf(err, "[Upload] file %q (%d of %d)", f.Name, i+1, len(pending))
		}
	}

	b.lock.Lock()
	b.staged = nil
	b.relatedID = ""
	b.state = StateIdle
	hooks := make([]func(files.Category), len(b.onUploaded))
	copy(hooks, b.onUploaded)
	b.lock.Unlock()

	b.log.Info().Str("batch_id", b.id).Int("count", len(pending)).Msg("batch uploaded")
	for _, fn := range hooks {
		fn(category)
	}
	return len(pending), nil
}
