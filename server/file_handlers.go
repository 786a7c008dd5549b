package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/agencydesk/go-dealer-admin/cars"
	"github.com/agencydesk/go-dealer-admin/files"
	"github.com/agencydesk/go-dealer-admin/uploads"
)

const maxStageMemory = 32 << 20 // 32MB before multipart parts spill to disk

type FilesPageData struct {
	HasAgency bool
	Files     []files.MediaFile
	Staged    []uploads.StagedFile
	Category  files.Category
	RelatedID string
	Uploading bool
	Cars      []cars.Car
}

func (s *Server) FilesPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasAgency := s.registry.ActiveAgencyID()
		data := FilesPageData{
			HasAgency: hasAgency,
			Files:     s.views.Files.Items(),
			Staged:    s.batch.Staged(),
			Category:  s.batch.Category(),
			RelatedID: s.batch.RelatedID(),
			Uploading: s.batch.State() == uploads.StateUploading,
			Cars:      s.views.Cars.Items(),
		}
		s.renderPage(w, r, "files", "Files", "files.html", data)
	}
}

// FileStageHandler adds picked files to the pending batch. Nothing is sent
// to the backend until the upload is confirmed.
func (s *Server) FileStageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxStageMemory); err != nil {
			http.Redirect(w, r, RouteFiles+"?error=Invalid+upload+form", http.StatusSeeOther)
			return
		}

		if category := r.FormValue("category"); category != "" {
			s.batch.SetCategory(files.Category(category))
		}
		s.batch.SetRelatedID(r.FormValue("related_id"))

		var staged []uploads.StagedFile
		for _, header := range r.MultipartForm.File["files"] {
			f, err := header.Open()
			if err != nil {
				s.redirectError(w, r, RouteFiles, err)
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				s.redirectError(w, r, RouteFiles, err)
				return
			}
			staged = append(staged, uploads.StagedFile{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
		if len(staged) == 0 {
			http.Redirect(w, r, RouteFiles+"?error=No+files+selected", http.StatusSeeOther)
			return
		}

		s.batch.Stage(staged...)
		s.redirectNotice(w, r, RouteFiles, fmt.Sprintf("%d file(s) staged", len(staged)))
	}
}

// FileUploadHandler sends the staged batch. A mid-batch failure reports how
// many files made it; the failed file and the rest stay staged for a retry.
func (s *Server) FileUploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := s.batch.Upload(r.Context())
		if err != nil {
			if count > 0 {
				s.views.Files.Reload(r.Context())
			}
			s.redirectError(w, r, RouteFiles, err)
			return
		}
		s.redirectNotice(w, r, RouteFiles, fmt.Sprintf("%d file(s) uploaded", count))
	}
}

func (s *Server) FileClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.batch.Clear()
		s.redirectNotice(w, r, RouteFiles, "Staged files cleared")
	}
}

func (s *Server) FileDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if err := s.backend.DeleteFile(r.Context(), id); err != nil {
			s.redirectError(w, r, RouteFiles, err)
			return
		}
		// A deleted attachment may have been a car's cover image, so
		// the vehicle list is refreshed alongside the attachment list.
		s.views.Files.Reload(r.Context())
		s.views.Cars.Reload(r.Context())
		s.redirectNotice(w, r, RouteFiles, "File deleted")
	}
}
