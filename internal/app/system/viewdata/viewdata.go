// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/notify"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// NavItem is one entry in the sidebar.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string
	Lang     string
	Dir      string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Nav         []NavItem

	// CSRF protection (empty on routes without the csrf middleware)
	CSRFToken string

	// Toasts carried over from the previous request.
	Toasts []notify.Toast
}

// flashes is set by Init and drained into every BaseVM.
var flashes *notify.FlashStore

// Init sets the flash store pages read pending toasts from.
// Call this once at startup from bootstrap.
func Init(store *notify.FlashStore) {
	flashes = store
}

// NewBaseVM creates a fully populated BaseVM for a page. It pops pending
// flash toasts, so call it before anything is written to w.
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	current := httpnav.CurrentPath(r)
	vm := BaseVM{
		SiteName:    i18n.T(i18n.MsgSiteName),
		Lang:        i18n.Lang,
		Dir:         i18n.Dir,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: current,
		Nav:         Nav(current),
		CSRFToken:   csrf.Token(r),
	}
	if flashes != nil {
		vm.Toasts = flashes.Pop(w, r)
	}
	return vm
}

// Nav returns the sidebar entries with the one matching current marked.
func Nav(current string) []NavItem {
	items := []NavItem{
		{Label: i18n.T(i18n.MsgNavDashboard), Href: "/dashboard"},
		{Label: i18n.T(i18n.MsgNavCategories), Href: "/categories"},
		{Label: i18n.T(i18n.MsgNavParts), Href: "/parts"},
		{Label: i18n.T(i18n.MsgNavAPIDocs), Href: "/api-docs"},
	}
	for i := range items {
		items[i].Active = current == items[i].Href ||
			(len(current) > len(items[i].Href) && current[:len(items[i].Href)+1] == items[i].Href+"/")
	}
	return items
}
