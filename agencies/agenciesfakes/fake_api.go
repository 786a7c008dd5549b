package agenciesfakes

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agencydesk/go-dealer-admin/agencies"
	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

var _ agencies.API = (*FakeAPI)(nil)

// FakeAPI is an in-memory stand-in for the backend agency endpoints.
type FakeAPI struct {
	lock  sync.RWMutex
	items []agencies.Agency

	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error

	ListCalls int
}

func NewFakeAPI(seed ...agencies.Agency) *FakeAPI {
	return &FakeAPI{items: seed}
}

func (f *FakeAPI) ListAgencies(ctx context.Context) ([]agencies.Agency, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]agencies.Agency, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *FakeAPI) CreateAgency(ctx context.Context, input agencies.AgencyInput) (agencies.Agency, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.CreateErr != nil {
		return agencies.Agency{}, f.CreateErr
	}
	agency := agencies.Agency{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Address:       input.Address,
		Phone:         input.Phone,
		GoogleMapsURL: input.GoogleMapsURL,
		BusinessHours: input.BusinessHours,
		WhatsappPhone: input.WhatsappPhone,
		IsActive:      true,
	}
	f.items = append(f.items, agency)
	return agency, nil
}

func (f *FakeAPI) UpdateAgency(ctx context.Context, id string, input agencies.AgencyInput) (agencies.Agency, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.UpdateErr != nil {
		return agencies.Agency{}, f.UpdateErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = input.Name
			f.items[i].Address = input.Address
			f.items[i].Phone = input.Phone
			f.items[i].GoogleMapsURL = input.GoogleMapsURL
			f.items[i].BusinessHours = input.BusinessHours
			f.items[i].WhatsappPhone = input.WhatsappPhone
			return f.items[i], nil
		}
	}
	return agencies.Agency{}, apperrors.ErrNotFound
}

func (f *FakeAPI) DeleteAgency(ctx context.Context, id string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
