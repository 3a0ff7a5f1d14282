package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"creativehub/internal/client"
	"creativehub/internal/console"
	"creativehub/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// listParams are the list subcommand flags after parsing.
type listParams struct {
	query  console.Query
	parent string // nested path segment, e.g. "course"
	id     string
}

// resource is one collection hubctl can drive.
type resource interface {
	list(ctx context.Context, a *app, p listParams) error
	get(ctx context.Context, a *app, id string) error
	save(ctx context.Context, a *app, id string, sets [][2]string) error
	remove(ctx context.Context, a *app, id string) error
}

type binding[T any] struct {
	name   string
	noun   string
	fields console.Fields[T]
	schema console.Schema
	header []string
	row    func(T) []string
	label  func(T) string
}

func (b binding[T]) rc(a *app) *client.ResourceClient[T] {
	return client.NewResource[T](a.client, b.name)
}

func (b binding[T]) controller(a *app, p listParams) *console.ListController[T] {
	var source console.Lister[T] = b.rc(a)
	if p.parent != "" {
		source = nestedLister[T]{rc: b.rc(a), parent: p.parent, id: p.id}
	}

	return console.NewListController(source, b.fields, console.ListOptions{
		Noun:      b.noun,
		Notifier:  a.notifier,
		Confirmer: a.confirmer,
	})
}

func (b binding[T]) list(ctx context.Context, a *app, p listParams) error {
	lc := b.controller(a, p)
	defer lc.Close()

	if err := lc.Load(ctx); err != nil {
		return a.settle(err)
	}
	lc.SetQuery(p.query)

	visible := lc.Visible()
	writeTable(a.out, b.header, visible, b.row)

	c := lc.Counts()
	fmt.Fprintf(a.out, "\n%d shown of %d", len(visible), c.Total)
	if b.fields.Status != nil && c.Published+c.Draft+c.Pending > 0 {
		fmt.Fprintf(a.out, " (published %d, draft %d, pending %d)", c.Published, c.Draft, c.Pending)
	}
	fmt.Fprintln(a.out)

	return nil
}

func (b binding[T]) get(ctx context.Context, a *app, id string) error {
	item, err := b.rc(a).Get(ctx, id)
	if err != nil {
		a.notifier.Error(client.Message(err, fmt.Sprintf("Failed to load %s", strings.ToLower(b.noun))))

		return a.settle(err)
	}

	return writeJSON(a.out, item)
}

func (b binding[T]) save(ctx context.Context, a *app, id string, sets [][2]string) error {
	form := console.NewFormController[T](b.rc(a), b.schema, console.FormOptions{Noun: b.noun, Notifier: a.notifier})
	if err := form.Open(ctx, id); err != nil {
		return a.settle(err)
	}
	for _, kv := range sets {
		if err := form.Set(kv[0], kv[1]); err != nil {
			return err
		}
	}

	item, err := form.Submit(ctx)
	if err != nil {
		return a.settle(err)
	}

	return writeJSON(a.out, item)
}

func (b binding[T]) remove(ctx context.Context, a *app, id string) error {
	label := id
	if item, err := b.rc(a).Get(ctx, id); err == nil && b.label != nil {
		label = b.label(item)
	}

	lc := b.controller(a, listParams{})
	defer lc.Close()

	if err := lc.Delete(ctx, id, label); err != nil {
		return a.settle(err)
	}

	return nil
}

// nestedLister lists a parent's children, e.g. GET /api/modules/course/:courseId.
type nestedLister[T any] struct {
	rc     *client.ResourceClient[T]
	parent string
	id     string
}

func (n nestedLister[T]) List(ctx context.Context, _ url.Values) ([]T, error) {
	return n.rc.ListNested(ctx, n.parent, n.id)
}

func (n nestedLister[T]) Remove(ctx context.Context, id string) error {
	return n.rc.Remove(ctx, id)
}

var registry = buildRegistry()

func buildRegistry() map[string]resource {
	r := map[string]resource{}

	for _, t := range entity.ProductTypes() {
		r[string(t)] = binding[entity.Product]{
			name:   string(t),
			noun:   productNoun(t),
			fields: console.ProductFields(),
			schema: console.ProductSchema(),
			header: []string{"ID", "TITLE", "STATUS", "PRICE", "RATING", "CREATED"},
			row: func(p entity.Product) []string {
				return []string{p.ID, p.Title, string(p.Status), formatPrice(p.Price, p.SalePrice), fmt.Sprintf("%.1f", p.Rating), day(p.CreatedAt)}
			},
			label: func(p entity.Product) string { return p.Title },
		}
	}

	r["categories"] = binding[entity.Category]{
		name: "categories", noun: "Category",
		fields: console.CategoryFields(), schema: console.CategorySchema(),
		header: []string{"ID", "NAME", "SLUG", "TYPE", "PARENT", "STATUS"},
		row: func(c entity.Category) []string {
			parent := "-"
			if c.ParentCategory != nil {
				parent = *c.ParentCategory
			}

			return []string{c.ID, c.Name, c.Slug, c.Type, parent, string(c.Status)}
		},
		label: func(c entity.Category) string { return c.Name },
	}
	r["courses"] = binding[entity.Course]{
		name: "courses", noun: "Course",
		fields: console.CourseFields(), schema: console.CourseSchema(),
		header: []string{"ID", "TITLE", "INSTRUCTOR", "LEVEL", "STATUS", "PRICE"},
		row: func(c entity.Course) []string {
			return []string{c.ID, c.Title, c.Instructor, c.Level, string(c.Status), formatPrice(c.Price, c.SalePrice)}
		},
		label: func(c entity.Course) string { return c.Title },
	}
	r["modules"] = binding[entity.Module]{
		name: "modules", noun: "Module",
		fields: console.ModuleFields(), schema: console.ModuleSchema(),
		header: []string{"ID", "COURSE", "ORDER", "TITLE"},
		row: func(m entity.Module) []string {
			return []string{m.ID, m.Course, fmt.Sprint(m.Order), m.Title}
		},
		label: func(m entity.Module) string { return m.Title },
	}
	r["lessons"] = binding[entity.Lesson]{
		name: "lessons", noun: "Lesson",
		fields: console.LessonFields(), schema: console.LessonSchema(),
		header: []string{"ID", "MODULE", "ORDER", "TITLE", "MINUTES", "PREVIEW"},
		row: func(l entity.Lesson) []string {
			return []string{l.ID, l.Module, fmt.Sprint(l.Order), l.Title, fmt.Sprint(l.Duration), fmt.Sprint(l.IsPreview)}
		},
		label: func(l entity.Lesson) string { return l.Title },
	}
	r["webinars"] = binding[entity.Webinar]{
		name: "webinars", noun: "Webinar",
		fields: console.WebinarFields(), schema: console.WebinarSchema(),
		header: []string{"ID", "TITLE", "HOST", "SCHEDULED", "STATUS", "PRICE"},
		row: func(w entity.Webinar) []string {
			return []string{w.ID, w.Title, w.Host, w.ScheduledAt.Format(time.RFC3339), string(w.Status), formatPrice(w.Price, nil)}
		},
		label: func(w entity.Webinar) string { return w.Title },
	}
	r["certificates"] = binding[entity.Certificate]{
		name: "certificates", noun: "Certificate",
		fields: console.CertificateFields(), schema: console.CertificateSchema(),
		header: []string{"ID", "CERTIFICATE", "STUDENT", "COURSE", "COMPLETED", "STATUS"},
		row: func(c entity.Certificate) []string {
			return []string{c.ID, c.CertificateID, c.StudentName, c.CourseName, day(c.CompletedAt), string(c.Status)}
		},
		label: func(c entity.Certificate) string { return c.CertificateID },
	}
	r["users"] = binding[entity.User]{
		name: "users", noun: "User",
		fields: console.UserFields(), schema: console.UserSchema(),
		header: []string{"ID", "NAME", "EMAIL", "ROLE", "STATUS"},
		row: func(u entity.User) []string {
			return []string{u.ID, u.FullName(), u.Email, string(u.Role), string(u.Status)}
		},
		label: func(u entity.User) string { return u.Email },
	}

	return r
}

func lookup(name string) (resource, error) {
	r, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown resource %q (one of: %s)", name, strings.Join(resourceNames(), ", "))
	}

	return r, nil
}

func resourceNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func productNoun(t entity.ProductType) string {
	switch t {
	case entity.ProductTypeAudio:
		return "Audio track"
	case entity.ProductTypeVideoTemplates:
		return "Video template"
	case entity.ProductTypeAppTemplates:
		return "App template"
	case entity.ProductTypeWebsites:
		return "Website template"
	case entity.ProductTypeUIKits:
		return "UI kit"
	case entity.ProductTypePhotos:
		return "Photo"
	case entity.ProductTypeFonts:
		return "Font"
	default:
		return "Graphic"
	}
}

// formatPrice shows the effective price, with the list price and discount when on sale.
func formatPrice(price float64, sale *float64) string {
	effective := decimal.NewFromFloat(entity.EffectivePrice(price, sale)).StringFixed(2)
	if off := entity.DiscountPercent(price, sale); off > 0 {
		return fmt.Sprintf("%s (was %s, -%d%%)", effective, decimal.NewFromFloat(price).StringFixed(2), off)
	}

	return effective
}

func day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format(time.DateOnly)
}

func writeTable[T any](w io.Writer, header []string, items []T, row func(T) []string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, item := range items {
		fmt.Fprintln(tw, strings.Join(row(item), "\t"))
	}
	_ = tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
