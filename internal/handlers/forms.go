package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/development-sample/eceta.com/internal/forms"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/middleware"
	"github.com/development-sample/eceta.com/internal/observability"
	"github.com/development-sample/eceta.com/internal/router"
	"github.com/development-sample/eceta.com/internal/views"
)

// KindParam is the chi URL parameter naming the form.
const KindParam = "kind"

// Where each form is rendered when the post names no usable origin.
var defaultOrigins = map[forms.Kind][]string{
	forms.KindBrand:      {"for-brands"},
	forms.KindContact:    {"contact"},
	forms.KindNewsletter: {"blog"},
}

// Submit handles POST /{locale}/forms/{kind}. The values go through a fresh form controller.
// htmx swaps aimed at the form get the re-rendered form; plain posts and swaps aimed elsewhere
// (a boosted body, say) get the whole originating page. The page must carry the posted form,
// otherwise the form's default page is rendered.
func (s *Site) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l, ok := middleware.LocaleFromContext(ctx)
	if !ok {
		s.NotFound(w, r)
		return
	}
	kind, ok := forms.ParseKind(chi.URLParam(r, KindParam))
	if !ok {
		s.notFound(w, r, l, nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	segments := originSegments(l, r.PostForm.Get(forms.OriginField), kind)
	res, err := s.router.Resolve(ctx, l, segments)
	if errors.Is(err, router.ErrNotFound) || (err == nil && !views.RendersForm(res.Tag, kind)) {
		segments = defaultOrigins[kind]
		res, err = s.router.Resolve(ctx, l, segments)
	}
	if err != nil {
		s.resolveFailed(w, r, l, segments, err)
		return
	}

	c := s.viewContext(r, res)
	subCtx := forms.ContextWithVisitor(forms.ContextWithLocale(ctx, l), forms.VisitorFromRequest(r))
	switch kind {
	case forms.KindBrand:
		c.Forms.Brand, err = submitForm[forms.BrandApplication](subCtx, s.submitter, r.PostForm)
	case forms.KindContact:
		c.Forms.Contact, err = submitForm[forms.Contact](subCtx, s.submitter, r.PostForm)
	case forms.KindNewsletter:
		c.Forms.Newsletter, err = submitForm[forms.Newsletter](subCtx, s.submitter, r.PostForm)
	}

	status := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, forms.ErrInvalid):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusBadGateway
		observability.FromContext(ctx).Warn("form submission failed",
			zap.Error(err), zap.String("kind", string(kind)), zap.String("locale", l.String()))
	}

	if middleware.IsHTMX(ctx) {
		// htmx only swaps 2xx responses.
		status = http.StatusOK
		if target := middleware.HXTarget(ctx); target == "" || target == views.FormID(kind) {
			s.write(w, r, status, views.FormFragment(c, kind))
			return
		}
	}
	node, buildErr := views.Build(c)
	if buildErr != nil {
		observability.FromContext(ctx).Error("build view", zap.Error(buildErr))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.write(w, r, status, node)
}

func submitForm[T forms.Values](ctx context.Context, sub forms.Submitter, form url.Values) (forms.State[T], error) {
	if sub == nil {
		sub = forms.SubmitterFunc(func(context.Context, forms.Values) error {
			return errors.New("no submitter configured")
		})
	}
	ctrl := forms.NewController[T](sub)
	ctrl.Edit(forms.FromForm[T](form))
	err := ctrl.Submit(ctx)
	return ctrl.Snapshot(), err
}

// originSegments turns the posted origin path into route segments. Anything outside the
// current locale falls back to the form's default page.
func originSegments(l i18n.Locale, origin string, kind forms.Kind) []string {
	prefix := "/" + l.String()
	if origin == prefix {
		return nil
	}
	rest, ok := strings.CutPrefix(origin, prefix+"/")
	if !ok || strings.ContainsAny(rest, "?#") {
		return defaultOrigins[kind]
	}
	return splitSegments(rest)
}
