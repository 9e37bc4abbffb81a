// internal/app/features/parts/handler.go
package parts

import (
	"context"
	"net/http"
	"strings"

	errorsfeature "github.com/dalemusser/liftadmin/internal/app/features/errors"
	"github.com/dalemusser/liftadmin/internal/app/system/apiclient"
	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/formutil"
	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/inputval"
	"github.com/dalemusser/liftadmin/internal/app/system/limits"
	"github.com/dalemusser/liftadmin/internal/app/system/normalize"
	"github.com/dalemusser/liftadmin/internal/app/system/notify"
	"github.com/dalemusser/liftadmin/internal/app/system/viewdata"
	"github.com/dalemusser/liftadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Dialog names accepted in ?dialog=.
const (
	DialogCategory     = "category"
	DialogElevatorType = "elevator-type"
)

// Creator forwards new categories to the backend.
type Creator interface {
	CreatePartsCategory(ctx context.Context, c models.NewCategory) error
	CreateElevatorType(ctx context.Context, c models.NewCategory) error
}

// Flasher hands out a Notifier that survives the redirect after a POST.
type Flasher interface {
	For(w http.ResponseWriter, r *http.Request) notify.Notifier
}

type Handler struct {
	Store  Creator
	Flash  Flasher
	Parts  []models.Part
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(store Creator, flash Flasher, logger *zap.Logger) (*Handler, error) {
	parts, err := SampleParts()
	if err != nil {
		return nil, err
	}
	return &Handler{
		Store:  store,
		Flash:  flash,
		Parts:  parts,
		ErrLog: errorsfeature.NewErrorLogger(logger),
		Log:    logger,
	}, nil
}

// categoryInput is the validated shape of both dialog forms.
type categoryInput struct {
	Name        string `validate:"notblank,max=200" label:"نام"`
	Description string `validate:"max=1000" label:"توضیحات"`
}

type categoryForm struct {
	formutil.Base
	ID          string
	Action      string
	Title       string
	CSRFToken   string
	Name        string
	Description string
	IsActive    bool
}

type partRow struct {
	models.Part
	StockLabel  string
	StatusLabel string
}

type pageData struct {
	viewdata.BaseVM

	Parts        []partRow
	Dialog       string
	CategoryForm categoryForm
	TypeForm     categoryForm
}

// OpenForm is the form whose dialog is shown, or nil.
func (d pageData) OpenForm() *categoryForm {
	switch d.Dialog {
	case DialogCategory:
		return &d.CategoryForm
	case DialogElevatorType:
		return &d.TypeForm
	default:
		return nil
	}
}

// ServeList handles GET /parts. ?dialog= opens one of the two forms.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := h.basePageData(w, r)
	data.Dialog = selectDialog(r.URL.Query().Get("dialog"))
	templates.Render(w, r, "parts_page", data)
}

// CreateCategory handles POST /parts/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, DialogCategory)
}

// CreateElevatorType handles POST /parts/elevator-types.
func (h *Handler) CreateElevatorType(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, DialogElevatorType)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, dialog string) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxCategoryFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parts: bad form", err, zap.String("dialog", dialog))
		return
	}

	in := categoryInput{
		Name:        normalize.Name(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
	active := r.PostFormValue("is_active") != ""

	if res := inputval.Validate(in); res.HasErrors() {
		data := h.basePageData(w, r)
		data.Dialog = dialog
		form := data.formFor(dialog)
		form.Name, form.Description, form.IsActive = in.Name, in.Description, active
		form.SetFieldErrors(res)

		w.WriteHeader(http.StatusUnprocessableEntity)
		templates.Render(w, r, "parts_page", data)
		return
	}

	nc := models.NewCategory{Name: in.Name, Description: in.Description, IsActive: active}
	var err error
	var okMsg string
	if dialog == DialogCategory {
		err = h.Store.CreatePartsCategory(r.Context(), nc)
		okMsg = i18n.T(i18n.MsgCategoryCreated, nc.Name)
	} else {
		err = h.Store.CreateElevatorType(r.Context(), nc)
		okMsg = i18n.T(i18n.MsgTypeCreated, nc.Name)
	}

	n := h.Flash.For(w, r)
	if err != nil {
		h.Log.Warn("parts: create failed",
			zap.String("dialog", dialog),
			zap.String("kind", string(apiclient.Classify(err))),
			zap.Error(err))
		n.Error(i18n.T(i18n.MsgSubmitFailed, SubmitErrorMessage(err)))
		http.Redirect(w, r, "/parts?dialog="+dialog, http.StatusSeeOther)
		return
	}

	n.Success(okMsg)
	http.Redirect(w, r, "/parts", http.StatusSeeOther)
}

// SubmitErrorMessage prefers the backend's own message for validation
// failures and falls back to the banner text for the error kind.
func SubmitErrorMessage(err error) string {
	kind := apiclient.Classify(err)
	if kind == apiclient.KindValidation {
		if msg := apiclient.BackendMessage(err); msg != "" {
			return msg
		}
	}
	return fetchstate.BannerMessage(kind)
}

func (h *Handler) basePageData(w http.ResponseWriter, r *http.Request) pageData {
	base := viewdata.NewBaseVM(w, r, i18n.T(i18n.MsgNavParts), "/dashboard")
	data := pageData{
		BaseVM: base,
		CategoryForm: categoryForm{
			ID:        "category-dialog",
			Action:    "/parts/categories",
			Title:     i18n.T(i18n.MsgNewCategory),
			CSRFToken: base.CSRFToken,
			IsActive:  true,
		},
		TypeForm: categoryForm{
			ID:        "elevator-type-dialog",
			Action:    "/parts/elevator-types",
			Title:     i18n.T(i18n.MsgNewType),
			CSRFToken: base.CSRFToken,
			IsActive:  true,
		},
	}
	for _, p := range h.Parts {
		data.Parts = append(data.Parts, partRow{
			Part:        p,
			StockLabel:  i18n.Number(p.Stock),
			StatusLabel: StatusLabel(p.Status),
		})
	}
	return data
}

func (d *pageData) formFor(dialog string) *categoryForm {
	if dialog == DialogElevatorType {
		return &d.TypeForm
	}
	return &d.CategoryForm
}

func selectDialog(raw string) string {
	switch raw {
	case DialogCategory, DialogElevatorType:
		return raw
	default:
		return ""
	}
}
