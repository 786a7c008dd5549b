package agenciesfakes

import (
	"sync"

	"github.com/agencydesk/go-dealer-admin/agencies"
)

var _ agencies.SelectionStore = (*FakeSelectionStore)(nil)

// FakeSelectionStore keeps the persisted active agency id in memory.
type FakeSelectionStore struct {
	lock sync.RWMutex
	id   string
	set  bool
}

func NewFakeSelectionStore() *FakeSelectionStore {
	return &FakeSelectionStore{}
}

func (f *FakeSelectionStore) ActiveAgencyID() (string, bool) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.id, f.set
}

func (f *FakeSelectionStore) SaveActiveAgencyID(id string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.id = id
	f.set = true
	return nil
}

func (f *FakeSelectionStore) ClearActiveAgencyID() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.id = ""
	f.set = false
	return nil
}

var _ agencies.TokenSource = (*FakeTokenSource)(nil)

// FakeTokenSource returns a fixed token.
type FakeTokenSource struct {
	BearerToken string
}

func (f *FakeTokenSource) Token() string {
	return f.BearerToken
}
