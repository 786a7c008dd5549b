package uploads_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/go-dealer-admin/files"
	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
	"github.com/agencydesk/go-dealer-admin/uploads"
	"github.com/agencydesk/go-dealer-admin/uploads/uploadsfakes"
)

type stubActive struct {
	id string
	ok bool
}

func (s *stubActive) ActiveAgencyID() (string, bool) { return s.id, s.ok }

func staged(names ...string) []uploads.StagedFile {
	out := make([]uploads.StagedFile, 0, len(names))
	for _, name := range names {
		out = append(out, uploads.StagedFile{Name: name, ContentType: "image/jpeg", Data: []byte{0xff}})
	}
	return out
}

func TestBatch_Validate(t *testing.T) {
	api := uploadsfakes.NewFakeAPI()
	active := &stubActive{id: "a1", ok: true}

	t.Run("empty batch", func(t *testing.T) {
		batch := uploads.NewBatch(api, active, zerolog.Nop())

		count, err := batch.Upload(context.Background())
		require.ErrorIs(t, err, uploads.ErrEmptyBatch)
		require.Zero(t, count)
		require.Zero(t, api.CallCount())
	})

	t.Run("car files need a related car", func(t *testing.T) {
		batch := uploads.NewBatch(api, active, zerolog.Nop())
		batch.Stage(staged("front.jpg")...)
		batch.SetCategory(files.CategoryCar)

		count, err := batch.Upload(context.Background())
		require.ErrorIs(t, err, uploads.ErrCarRequiresRelated)
		require.Zero(t, count)
		require.Zero(t, api.CallCount())
	})
}

func TestBatch_Upload(t *testing.T) {
	t.Run("requires an active agency", func(t *testing.T) {
		api := uploadsfakes.NewFakeAPI()
		batch := uploads.NewBatch(api, &stubActive{}, zerolog.Nop())
		batch.Stage(staged("front.jpg")...)

		_, err := batch.Upload(context.Background())
		require.ErrorIs(t, err, apperrors.ErrNoActiveAgency)
		require.Zero(t, api.CallCount())
	})

	t.Run("uploads sequentially and clears the batch", func(t *testing.T) {
		api := uploadsfakes.NewFakeAPI()
		batch := uploads.NewBatch(api, &stubActive{id: "a1", ok: true}, zerolog.Nop())
		batch.Stage(staged("one.jpg", "two.jpg", "three.jpg")...)

		count, err := batch.Upload(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, count)
		require.Equal(t, 3, api.CallCount())
		require.Equal(t, "one.jpg", api.Calls[0].Name)
		require.Equal(t, "two.jpg", api.Calls[1].Name)
		require.Equal(t, "three.jpg", api.Calls[2].Name)
		require.Equal(t, "a1", api.Calls[0].AgencyID)

		require.Empty(t, batch.Staged())
		require.Equal(t, uploads.StateIdle, batch.State())
	})

	t.Run("failure aborts and keeps the remainder staged", func(t *testing.T) {
		api := uploadsfakes.NewFakeAPI()
		api.FailAt = 2
		api.FailErr = errors.New("file too large")

		batch := uploads.NewBatch(api, &stubActive{id: "a1", ok: true}, zerolog.Nop())
		batch.Stage(staged("one.jpg", "two.jpg", "three.jpg")...)

		count, err := batch.Upload(context.Background())
		require.Error(t, err)
		require.Contains(t, err.Error(), "file too large")
		require.Equal(t, 1, count)

		// The third file was never attempted.
		require.Equal(t, 2, api.CallCount())

		remaining := batch.Staged()
		require.Len(t, remaining, 2)
		require.Equal(t, "two.jpg", remaining[0].Name)
		require.Equal(t, "three.jpg", remaining[1].Name)
		require.Equal(t, uploads.StateStaged, batch.State())
	})

	t.Run("car uploads carry the related id", func(t *testing.T) {
		api := uploadsfakes.NewFakeAPI()
		batch := uploads.NewBatch(api, &stubActive{id: "a1", ok: true}, zerolog.Nop())
		batch.Stage(staged("front.jpg")...)
		batch.SetCategory(files.CategoryCar)
		batch.SetRelatedID("car-42")

		_, err := batch.Upload(context.Background())
		require.NoError(t, err)
		require.Equal(t, files.CategoryCar, api.Calls[0].Category)
		require.Equal(t, "car-42", api.Calls[0].RelatedID)
	})

	t.Run("hooks run with the uploaded category", func(t *testing.T) {
		api := uploadsfakes.NewFakeAPI()
		batch := uploads.NewBatch(api, &stubActive{id: "a1", ok: true}, zerolog.Nop())
		batch.Stage(staged("front.jpg")...)
		batch.SetCategory(files.CategoryCar)
		batch.SetRelatedID("car-42")

		var got []files.Category
		batch.OnUploaded(func(category files.Category) {
			got = append(got, category)
		})

		_, err := batch.Upload(context.Background())
		require.NoError(t, err)
		require.Equal(t, []files.Category{files.CategoryCar}, got)
	})
}

func TestBatch_Clear(t *testing.T) {
	api := uploadsfakes.NewFakeAPI()
	batch := uploads.NewBatch(api, &stubActive{id: "a1", ok: true}, zerolog.Nop())
	batch.Stage(staged("one.jpg")...)
	batch.SetRelatedID("car-42")

	batch.Clear()

	require.Empty(t, batch.Staged())
	require.Empty(t, batch.RelatedID())
	require.Equal(t, uploads.StateIdle, batch.State())
}
