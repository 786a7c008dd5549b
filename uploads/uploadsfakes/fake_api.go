package uploadsfakes

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agencydesk/go-dealer-admin/files"
	"github.com/agencydesk/go-dealer-admin/uploads"
)

var _ uploads.API = (*FakeAPI)(nil)

// UploadCall records one observed upload request.
type UploadCall struct {
	AgencyID  string
	Category  files.Category
	RelatedID string
	Name      string
}

// FakeAPI records upload requests and can fail the n-th one.
type FakeAPI struct {
	lock  sync.Mutex
	Calls []UploadCall

	// FailAt makes the n-th call (1-based) return FailErr. Zero disables.
	FailAt  int
	FailErr error
}

func NewFakeAPI() *FakeAPI {
	return &FakeAPI{}
}

func (f *FakeAPI) UploadFile(ctx context.Context, agencyID string, category files.Category, relatedID string, staged uploads.StagedFile) (files.MediaFile, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Calls = append(f.Calls, UploadCall{
		AgencyID:  agencyID,
		Category:  category,
		RelatedID: relatedID,
		Name:      staged.Name,
	})
	if f.FailAt > 0 && len(f.Calls) == f.FailAt && f.FailErr != nil {
		return files.MediaFile{}, f.FailErr
	}
	return files.MediaFile{
		ID:       uuid.New().String(),
		AgencyID: agencyID,
		Filename: staged.Name,
		Category: category,
	}, nil
}

func (f *FakeAPI) CallCount() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.Calls)
}
