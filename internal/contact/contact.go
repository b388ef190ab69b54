// Package contact handles the home page contact form.
package contact

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Simplici0/studio/internal/apperr"
	"github.com/Simplici0/studio/internal/mailer"
	"github.com/Simplici0/studio/internal/storage"
	"github.com/Simplici0/studio/internal/validate"
)

const maxMemory = 10 << 20

// ErrMissingFields is returned when name or email is blank.
var ErrMissingFields = apperr.BadRequest("Name and email are required.")

// Submission is a parsed contact form.
type Submission struct {
	Name    string                  `json:"name" validate:"required,max=200"`
	Email   string                  `json:"email" validate:"required,email,max=254"`
	Message string                  `json:"message" validate:"max=5000"`
	Files   []*multipart.FileHeader `json:"files" validate:"max=5"`
}

// Parse reads a multipart or urlencoded contact form.
func Parse(r *http.Request) (Submission, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return Submission{}, apperr.BadRequest("Invalid form data.")
		}
	} else if err := r.ParseForm(); err != nil {
		return Submission{}, apperr.BadRequest("Invalid form data.")
	}

	sub := Submission{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
	if r.MultipartForm != nil {
		sub.Files = r.MultipartForm.File["files"]
	}
	return sub, nil
}

// Service stores attachments and forwards contact messages.
type Service struct {
	uploader  storage.Uploader
	sender    mailer.Sender
	validator *validate.Validator
	from      string
	to        []string
	log       zerolog.Logger
}

// NewService returns a Service. uploader may be nil, in which case
// attachments are listed but not stored.
func NewService(uploader storage.Uploader, sender mailer.Sender, from string, to []string, log zerolog.Logger) *Service {
	if sender == nil {
		sender = mailer.NoopSender{}
	}
	return &Service{
		uploader:  uploader,
		sender:    sender,
		validator: validate.New(),
		from:      from,
		to:        to,
		log:       log,
	}
}

// check validates sub. A blank name or email reports ErrMissingFields ahead
// of any other rule.
func (s *Service) check(sub Submission) error {
	err := s.validator.Struct(sub)
	if err == nil {
		return nil
	}
	var verr *validate.Error
	if errors.As(err, &verr) && verr.Failed("required") {
		return ErrMissingFields
	}
	return apperr.Validation(err.Error())
}

type fileView struct {
	Name string
	Size string
	URL  string
}

type emailView struct {
	Name    string
	Email   string
	Message string
	Files   []fileView
}

// Result reports what happened to a submission.
type Result struct {
	Attachments int  `json:"attachments"`
	Uploaded    int  `json:"uploaded"`
	Notified    bool `json:"notified"`
}

// Submit validates sub, uploads its files and emails the studio. Upload
// and email failures are logged and do not fail the submission.
func (s *Service) Submit(ctx context.Context, sub Submission) (Result, error) {
	if err := s.check(sub); err != nil {
		return Result{}, err
	}

	res := Result{Attachments: len(sub.Files)}
	view := emailView{Name: sub.Name, Email: sub.Email, Message: sub.Message}
	folder := "contact/" + uuid.NewString()

	for _, fh := range sub.Files {
		fv := fileView{Name: fh.Filename, Size: humanize.Bytes(uint64(fh.Size))}
		if s.uploader != nil {
			obj, err := s.upload(ctx, folder, fh)
			if err != nil {
				s.log.Error().Err(err).Str("file", fh.Filename).Msg("upload contact attachment")
			} else {
				fv.URL = obj.URL
				res.Uploaded++
			}
		}
		view.Files = append(view.Files, fv)
	}

	if err := s.notify(ctx, view); err != nil {
		s.log.Error().Err(err).Msg("send contact notification")
	} else {
		res.Notified = true
	}

	s.log.Info().Int("attachments", res.Attachments).Int("uploaded", res.Uploaded).Bool("notified", res.Notified).Msg("contact submitted")
	return res, nil
}

func (s *Service) upload(ctx context.Context, folder string, fh *multipart.FileHeader) (storage.Object, error) {
	f, err := fh.Open()
	if err != nil {
		return storage.Object{}, err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.uploader.Upload(ctx, folder, fh.Filename, contentType, f, fh.Size)
}

func (s *Service) notify(ctx context.Context, view emailView) error {
	html, err := mailer.RenderHTML("contact.html", view)
	if err != nil {
		return err
	}
	text, err := mailer.RenderText("contact.txt", view)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, mailer.Message{
		From:    s.from,
		To:      s.to,
		ReplyTo: view.Email,
		Subject: "New contact from " + view.Name,
		HTML:    html,
		Text:    text,
	})
}
